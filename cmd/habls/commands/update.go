package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kvale/habls/internal/version"
)

const versionURL = "https://raw.githubusercontent.com/kvale/habls/main/scripts/version.txt"

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update habls to the latest version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking for updates...")

		latest, err := fetchLatestVersion()
		if err != nil {
			fmt.Printf("Failed to check version: %v\n", err)
			return
		}

		if latest == version.Current {
			fmt.Printf("You are already running the latest version (%s).\n", version.Current)
			return
		}
		if versionLess(latest, version.Current) {
			fmt.Printf("You are running a newer version (%s) than the latest release (%s).\n", version.Current, latest)
			return
		}

		fmt.Printf("Found new version: %s (Current: %s)\n", latest, version.Current)
		fmt.Println("Downloading update...")

		if err := doUpdate(); err != nil {
			fmt.Printf("Update failed: %v\n", err)
			return
		}

		fmt.Println("[SUCCESS] Update successful! Please restart your terminal.")
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

func fetchLatestVersion() (string, error) {
	resp, err := http.Get(versionURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// versionLess compares vX.Y.Z strings component-wise, so v0.10.0 sorts
// after v0.3.0. Unparseable components count as zero.
func versionLess(a, b string) bool {
	pa, pb := versionParts(a), versionParts(b)
	for i := range pa {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return false
}

func versionParts(v string) [3]int {
	var out [3]int
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	for i, part := range strings.SplitN(v, ".", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		out[i] = n
	}
	return out
}

func doUpdate() error {
	cmd := exec.Command("sh", "-c", "curl -sL https://raw.githubusercontent.com/kvale/habls/main/scripts/install.sh | bash")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
