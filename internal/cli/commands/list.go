package commands

import (
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"xsmoke/internal/config"
	"xsmoke/internal/discovery"
	"xsmoke/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := lc.scanner.Scan(lc.config.GetTestRoot())
	if err != nil {
		return err
	}

	tests = lc.filter.FilterByName(tests, lc.config.Flags.NameFilter)
	sort.Strings(tests)

	if len(tests) == 0 {
		color.Yellow("No test files found")
		return nil
	}

	return lc.formatter.PrintTestList(tests)
}
