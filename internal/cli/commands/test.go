package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gtp/internal/aggregate"
	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/execution"
	"gtp/internal/storage"
	"gtp/internal/ui"
)

// ErrSuitesFailed is returned when at least one suite did not pass
var ErrSuitesFailed = errors.New("one or more test suites failed")

// TestCommand handles the test command
type TestCommand struct {
	config     *config.Config
	discoverer *discovery.Discoverer
	filter     *discovery.Filter
	scheduler  *execution.Scheduler
	aggregator *aggregate.Aggregator
	storage    storage.Storage
	formatter  *ui.Formatter
}

// NewTestCommand creates a new TestCommand
func NewTestCommand(
	cfg *config.Config,
	discoverer *discovery.Discoverer,
	filter *discovery.Filter,
	scheduler *execution.Scheduler,
	aggregator *aggregate.Aggregator,
	st storage.Storage,
	formatter *ui.Formatter,
) *TestCommand {
	return &TestCommand{
		config:     cfg,
		discoverer: discoverer,
		filter:     filter,
		scheduler:  scheduler,
		aggregator: aggregator,
		storage:    st,
		formatter:  formatter,
	}
}

// Execute runs the command
func (tc *TestCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := tc.config.Validate(); err != nil {
		return err
	}
	if err := tc.storage.EnsureDir(); err != nil {
		return err
	}

	// Discover suites
	discovered, err := tc.discoverer.Discover(cmd.Context())
	if err != nil {
		return err
	}
	discovered = tc.filter.FilterSuites(discovered, tc.config.Flags.Filter)

	if discovered.Total() == 0 {
		color.Yellow("No test suites to execute")
		return nil
	}

	jobs := tc.config.JobCount(discovered.Total())
	if !tc.config.Flags.NoProgress {
		tc.scheduler.SetProgress(ui.NewProgressBar(discovered.Total()))
	}

	// Execute suites
	start := time.Now()
	outcomes := tc.scheduler.Run(cmd.Context(), discovered, jobs)

	summary := tc.aggregator.Aggregate(outcomes)
	summary.Duration = time.Since(start)
	summary.Workers = jobs

	tc.formatter.PrintSummary(summary)

	if err := cmd.Context().Err(); err != nil {
		return fmt.Errorf("test run interrupted: %w", err)
	}
	if summary.Failed() {
		return ErrSuitesFailed
	}
	return nil
}
