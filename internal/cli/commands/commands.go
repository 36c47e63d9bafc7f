package commands

import (
	"xsmoke/internal/cli"
	"xsmoke/internal/config"
	"xsmoke/internal/discovery"
	"xsmoke/internal/engine"
	"xsmoke/internal/execution"
	"xsmoke/internal/launcher"
	"xsmoke/internal/parser"
	"xsmoke/internal/storage"
	"xsmoke/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Launch   *LaunchCommand
	Smoke    *SmokeCommand
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	scanner := discovery.NewScanner(cfg.TestSuffix, cfg.SkipDirs)
	filter := discovery.NewFilter()
	mochaParser := parser.NewMochaParser()
	mocha := engine.NewMocha(cfg, mochaParser)
	scheduler := execution.NewRoundRobinScheduler()
	pool := execution.NewWorkerPool(cfg, mocha, scheduler, mochaParser)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	hostLauncher := launcher.New(cfg)
	failureViewer := ui.NewFailureViewer(cfg, jsonStorage)

	return &Commands{
		Launch:   NewLaunchCommand(cfg, hostLauncher),
		Smoke:    NewSmokeCommand(cfg, scanner, filter, mocha),
		Run:      NewRunCommand(cfg, scanner, filter, pool, mochaParser, jsonStorage, formatter, failureViewer),
		List:     NewListCommand(cfg, scanner, filter, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, failureViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		return nil
	}

	// Launch command
	launchCmd := &cobra.Command{
		Use:     "launch",
		Short:   "Launch the host with the extension under test",
		Long:    "Start one isolated host instance with the extension loaded, sibling extensions disabled and the test entry point as its test module. Exits non-zero if the launch or the hosted test run fails.",
		RunE:    c.Launch.Execute,
		PreRunE: applyFlags,
	}
	launchCmd.Flags().StringVarP(&flags.ExtensionRoot, "extension-root", "e", "", "Development root of the extension under test")
	launchCmd.Flags().StringVar(&flags.TestEntry, "test-entry", "", "Test entry module handed to the host")
	launchCmd.Flags().StringVarP(&flags.Workspace, "workspace", "w", "", "Workspace folder to open in the instance")
	launchCmd.Flags().StringVar(&flags.HostBinary, "host", "", "Host application binary (defaults to 'code' in PATH)")
	rootCmd.AddCommand(launchCmd)

	// Smoke command
	smokeCmd := &cobra.Command{
		Use:     "smoke",
		Short:   "Discover and run the whole smoke suite in one engine invocation",
		Long:    "Recursively discover test files, sort them deterministically, register them with the test engine and run the suite exactly once. Fails with the failure count if any case fails.",
		RunE:    c.Smoke.Execute,
		PreRunE: applyFlags,
	}
	smokeCmd.Flags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Root folder for test file discovery")
	smokeCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*activation*')")
	rootCmd.AddCommand(smokeCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run test files in parallel",
		Long:    "Discover test files and execute one engine process per file across parallel workers, persisting results for the failures viewer",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().IntVarP(&flags.WorkerCount, "workers", "p", config.DefaultWorkers, "Number of parallel workers")
	runCmd.Flags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Root folder for test file discovery")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*activation*')")
	runCmd.Flags().BoolVar(&flags.FailFast, "fail-fast", false, "Stop on first failing test file")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failures viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered test files",
		Long:    "Scan and list all test files in deterministic run order without executing them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.TestRoot, "test-root", "t", "", "Root folder for test file discovery")
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*activation*')")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View test failures interactively",
		Long:    "Display test failures from the last run in an interactive viewer",
		RunE:    c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
