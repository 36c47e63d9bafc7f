package commands

import (
	"context"

	"github.com/spf13/cobra"

	"xsmoke/internal/config"
	"xsmoke/internal/launcher"
)

// LaunchCommand handles the launch command
type LaunchCommand struct {
	config   *config.Config
	launcher *launcher.Launcher
}

// NewLaunchCommand creates a new LaunchCommand
func NewLaunchCommand(cfg *config.Config, l *launcher.Launcher) *LaunchCommand {
	return &LaunchCommand{
		config:   cfg,
		launcher: l,
	}
}

// Execute runs the command. Any launch failure propagates so the process
// exits non-zero; a failed smoke run must fail the enclosing pipeline.
func (lc *LaunchCommand) Execute(cmd *cobra.Command, args []string) error {
	return lc.launcher.Launch(context.Background())
}
