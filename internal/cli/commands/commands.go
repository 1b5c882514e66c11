package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gtp/internal/aggregate"
	"gtp/internal/cli"
	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/execution"
	"gtp/internal/storage"
	"gtp/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Test     *TestCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, log *logrus.Logger) *Commands {
	// Initialize dependencies
	runner := execution.NewRunner(cfg, log)
	reportStore := storage.NewReportStore(cfg)
	discoverer := discovery.NewDiscoverer(cfg, runner, log)
	filter := discovery.NewFilter()
	executor := execution.NewSuiteExecutor(cfg, runner, reportStore, log)
	scheduler := execution.NewScheduler(executor, log)
	aggregator := aggregate.NewAggregator(reportStore, log)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFailureViewer()

	return &Commands{
		Test:     NewTestCommand(cfg, discoverer, filter, scheduler, aggregator, reportStore, formatter),
		List:     NewListCommand(cfg, discoverer, filter, formatter),
		Failures: NewFailuresCommand(cfg, aggregator, formatter, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, log *logrus.Logger) {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML config file (default: ./gtp.yaml when present)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Load the config file, then let command flags override it
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flags.ConfigFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		*cfg = *loaded
		flags.TimeoutSet = cmd.Flags().Changed("timeout")
		cfg.ApplyFlags(flags.ToConfigFlags())
		if flags.Verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	// Test command
	testCmd := &cobra.Command{
		Use:   "test",
		Short: "Run all test suites",
		Long: `Discover the suites of the test binary and run them: parameterized suites
(names containing '/') in parallel, all other suites one at a time.`,
		RunE: c.Test.Execute,
	}
	testCmd.Flags().IntVarP(&flags.Jobs, "jobs", "j", 0, "Number of parallel suites (default: min(32, suite count))")
	testCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-suite deadline, e.g. 10m, 0 disables it (overrides the config value, 30m by default)")
	testCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only run suites matching the pattern (supports wildcards, e.g. 'Basic*' or '*Param*')")
	testCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Disable the progress bar")
	rootCmd.AddCommand(testCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test suites",
		Long:  "Run the test binary in list mode and print the suites grouped by lane, without executing them",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only list suites matching the pattern")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failing test cases",
		Long:  "Browse the failing test cases recorded in the JSON reports of the last run",
		RunE:  c.Failures.Execute,
	}
	failuresCmd.Flags().BoolVar(&flags.Plain, "plain", false, "Print the failures instead of opening the interactive viewer")
	rootCmd.AddCommand(failuresCmd)
}
