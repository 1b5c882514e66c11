package commands

import (
	"github.com/spf13/cobra"

	"gtp/internal/config"
	"gtp/internal/discovery"
	"gtp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config     *config.Config
	discoverer *discovery.Discoverer
	filter     *discovery.Filter
	formatter  *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	discoverer *discovery.Discoverer,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:     cfg,
		discoverer: discoverer,
		filter:     filter,
		formatter:  formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := lc.config.Validate(); err != nil {
		return err
	}

	discovered, err := lc.discoverer.Discover(cmd.Context())
	if err != nil {
		return err
	}

	lc.formatter.PrintDiscovery(lc.filter.FilterSuites(discovered, lc.config.Flags.Filter))
	return nil
}
