// Package report renders instance listings for the terminal. Default and
// --ip modes stay strictly one-value-per-line so output pipes cleanly into
// tools like bolt or xargs.
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kvale/habls/internal/compute"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))

// Names prints instance names, one per line.
func Names(w io.Writer, instances []compute.Instance) {
	for _, in := range instances {
		fmt.Fprintln(w, in.Name)
	}
}

// IPs prints internal IPs, one per line. Instances without a reported IP
// are skipped rather than printing blanks into a pipeline.
func IPs(w io.Writer, instances []compute.Instance) {
	for _, in := range instances {
		if in.IP == "" {
			continue
		}
		fmt.Fprintln(w, in.IP)
	}
}

// Table prints the long form: every field the backend reports, one row per
// instance, columns sized to the widest value.
func Table(w io.Writer, instances []compute.Instance) {
	headers := []string{"NAME", "IP", "ZONE", "MACHINE TYPE", "CPU PLATFORM", "STATUS", "LABELS"}

	rows := make([][]string, 0, len(instances))
	for _, in := range instances {
		rows = append(rows, []string{
			in.Name, in.IP, in.Zone, in.MachineType, in.CPUPlatform, in.Status, in.LabelString(),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	fmt.Fprintln(w, headerStyle.Render(formatRow(headers, widths)))
	for _, row := range rows {
		fmt.Fprintln(w, formatRow(row, widths))
	}
}

func formatRow(cells []string, widths []int) string {
	line := ""
	for i, cell := range cells {
		if i > 0 {
			line += "  "
		}
		line += fmt.Sprintf("%-*s", widths[i], cell)
	}
	return line
}
