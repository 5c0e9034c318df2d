package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kvale/habls/internal/config"
)

var environmentsCmd = &cobra.Command{
	Use:     "environments",
	Aliases: []string{"envs"},
	Short:   "Show the configured habitats and their projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		names := cfg.Names()
		width := len("HABITAT")
		for _, name := range names {
			if len(name) > width {
				width = len(name)
			}
		}

		fmt.Fprintf(os.Stdout, "%-*s  %s\n", width, "HABITAT", "PROJECT")
		for _, name := range names {
			project, err := cfg.Resolve(name)
			if err != nil {
				continue
			}
			fmt.Fprintf(os.Stdout, "%-*s  %s\n", width, name, project)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(environmentsCmd)
}
