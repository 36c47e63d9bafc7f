package main

import (
	"fmt"
	"os"

	"xsmoke/internal/cli"
	"xsmoke/internal/cli/commands"
	"xsmoke/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "xsmoke",
		Short:   "Smoke-test harness for IDE extensions",
		Long:    `An end-to-end smoke-test harness for IDE extensions: launches an isolated host instance with the extension under test, discovers test files deterministically and aggregates the suite into a single pass/fail signal for CI.`,
		Version: version,
	}

	// Create initial config: defaults, then config file and .env overlays.
	// Flag overrides land later, once cobra has parsed them.
	cfg := config.New()
	cfg.LoadEnvironment()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// A failed launch or failed suite must fail the enclosing build.
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
