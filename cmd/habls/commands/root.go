package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/api/option"

	"github.com/kvale/habls/internal/compute"
	"github.com/kvale/habls/internal/config"
	"github.com/kvale/habls/internal/gcloud"
	"github.com/kvale/habls/internal/report"
	"github.com/kvale/habls/internal/telemetry"
	"github.com/kvale/habls/internal/version"
)

var (
	cfgFile   string
	habitat   string
	longOut   bool
	ipOnly    bool
	viaGcloud bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "habls --env <habitat> <pattern>",
	Short: "List compute instances by habitat",
	Long: `habls - Habitat Instance Lister

Lists the Compute Engine instances of a habitat (deployment tier) whose
names match a pattern. Authentication is whatever your gcloud session
already has; habls never stores credentials.

Example:
  habls --env int store-lb
  habls --env prd --ip '^store-lb' | xargs -n1 ping -c1`,
	Version:       version.Current,
	Args:          cobra.ExactArgs(1),
	RunE:          runList,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	// Let SIGINT/SIGTERM cancel the context so a running gcloud child is
	// reaped instead of orphaned.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.habls.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Diagnostic chatter on stderr")

	rootCmd.Flags().StringVarP(&habitat, "env", "e", "", "Habitat to list (e.g. int, stg, prd)")
	rootCmd.Flags().BoolVarP(&longOut, "long", "l", false, "Long output: zone, machine type, CPU platform, status, labels")
	rootCmd.Flags().BoolVarP(&ipOnly, "ip", "i", false, "Print internal IPs only. Handy for piping to other commands like bolt")
	rootCmd.Flags().BoolVar(&viaGcloud, "via-gcloud", false, "Delegate the listing itself to the gcloud CLI instead of the API")
	rootCmd.MarkFlagsMutuallyExclusive("long", "ip")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd)
	})
}

func runList(cmd *cobra.Command, args []string) error {
	pattern := args[0]

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	if habitat == "" {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("--env is required (known habitats: %s)", strings.Join(cfg.Names(), ", "))
		}
		picked, err := PromptForHabitat(cfg.Names())
		if err != nil || picked == "" {
			return fmt.Errorf("no habitat selected (known habitats: %s)", strings.Join(cfg.Names(), ", "))
		}
		habitat = picked
	}

	project, err := cfg.Resolve(habitat)
	if err != nil {
		return err
	}

	re, err := compute.CompilePattern(pattern)
	if err != nil {
		return err
	}

	shutdown, err := telemetry.Init(cmd.Context(), version.AppName, version.Current)
	if err != nil {
		// Tracing is best-effort, but a broken endpoint should still be
		// diagnosable.
		if verbose {
			fmt.Fprintf(os.Stderr, "[WARN] Telemetry disabled: %v\n", err)
		}
	} else {
		defer shutdown(context.Background())
	}

	ctx, span := telemetry.Tracer("habls").Start(cmd.Context(), "instances.list",
		trace.WithAttributes(
			attribute.String("habitat.name", habitat),
			attribute.String("habitat.project", project),
		))
	defer span.End()

	if !gcloud.IsInstalled() {
		return fmt.Errorf("gcloud not found in PATH; habls needs it for authentication and listing")
	}

	runner := gcloud.NewRunner()
	var lister compute.Lister
	if viaGcloud {
		lister = gcloud.NewLister(runner)
	} else {
		lister = compute.NewAPILister(option.WithTokenSource(gcloud.NewTokenSource(project, runner)))
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[INFO] Listing instances in habitat %s (project %s)\n", habitat, project)
	}

	instances, err := lister.List(ctx, project, pattern)
	if err != nil {
		span.RecordError(err)
		return err
	}

	matches := compute.Filter(instances, re)
	span.SetAttributes(attribute.Int("instances.matched", len(matches)))

	if verbose {
		fmt.Fprintf(os.Stderr, "[INFO] %d of %d instances match %q\n", len(matches), len(instances), pattern)
	}

	switch {
	case longOut:
		report.Table(os.Stdout, matches)
	case ipOnly:
		report.IPs(os.Stdout, matches)
	default:
		report.Names(os.Stdout, matches)
	}
	return nil
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".habls")
		viper.SetConfigType("yaml")
	}
	// Env binding (HABLS_ prefix) is wired up in config.Load.
	viper.ReadInConfig()
}

func renderHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("HABLS %s", version.Current)))
	fmt.Println("Habitat-aware Compute Engine instance lister.")

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-14s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("EXAMPLES"))
	fmt.Println("  habls --env int store-lb          # Names of int instances matching store-lb")
	fmt.Println("  habls --env prd --long '^auth-'   # Full table for prod auth services")
	fmt.Println("  habls --env stg --ip redis        # IPs only, pipe-friendly")
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-12s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
