package commands

import (
	"github.com/spf13/cobra"

	"xsmoke/internal/config"
	"xsmoke/internal/discovery"
	"xsmoke/internal/engine"
	"xsmoke/internal/runner"
)

// SmokeCommand handles the smoke command
type SmokeCommand struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
	engine  engine.Engine
}

// NewSmokeCommand creates a new SmokeCommand
func NewSmokeCommand(cfg *config.Config, scanner *discovery.Scanner, filter *discovery.Filter, eng engine.Engine) *SmokeCommand {
	return &SmokeCommand{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
		engine:  eng,
	}
}

// Execute runs the command: one discovery pass, one engine invocation, one
// terminal outcome.
func (sc *SmokeCommand) Execute(cmd *cobra.Command, args []string) error {
	r := runner.New(sc.scanner, sc.filter, sc.engine, sc.config.GetTestRoot(), sc.config.Flags.NameFilter)
	return r.Run()
}
