package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"gtp/internal/aggregate"
	"gtp/internal/config"
	"gtp/internal/ui"
)

// FailuresCommand handles the failures command
type FailuresCommand struct {
	config     *config.Config
	aggregator *aggregate.Aggregator
	formatter  *ui.Formatter
	viewer     ui.Viewer
}

// NewFailuresCommand creates a new FailuresCommand
func NewFailuresCommand(cfg *config.Config, aggregator *aggregate.Aggregator, formatter *ui.Formatter, viewer ui.Viewer) *FailuresCommand {
	return &FailuresCommand{
		config:     cfg,
		aggregator: aggregator,
		formatter:  formatter,
		viewer:     viewer,
	}
}

// Execute runs the command
func (fc *FailuresCommand) Execute(cmd *cobra.Command, args []string) error {
	failures, diagnostics, err := fc.aggregator.Failures()
	if err != nil {
		return err
	}

	if fc.config.Flags.Plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		fc.formatter.PrintFailures(failures, diagnostics)
		return nil
	}
	return fc.viewer.View(failures)
}
