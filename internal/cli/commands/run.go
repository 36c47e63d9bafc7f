package commands

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"xsmoke/internal/config"
	"xsmoke/internal/discovery"
	"xsmoke/internal/domain"
	"xsmoke/internal/execution"
	"xsmoke/internal/parser"
	"xsmoke/internal/storage"
	"xsmoke/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.WorkerPool
	parser    *parser.MochaParser
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    *ui.FailureViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.WorkerPool,
	p *parser.MochaParser,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.FailureViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		parser:    p,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	tests, err := rc.scanner.Scan(rc.config.GetTestRoot())
	if err != nil {
		return err
	}

	tests = rc.filter.FilterByName(tests, rc.config.Flags.NameFilter)
	sort.Strings(tests)

	if len(tests) == 0 {
		color.Yellow("No test files to execute")
		return nil
	}

	progressBar := ui.NewProgressBar(len(tests))
	rc.executor.SetProgress(progressBar)

	results, duration, err := rc.executor.ExecuteWithOptions(tests, rc.config.Flags.FailFast)
	if err != nil {
		return err
	}

	var failures []domain.Failure
	for _, result := range results {
		if !result.Success {
			failures = append(failures, rc.parser.ParseFailures(result)...)
		}
	}

	if err := rc.storage.Save(results, failures, duration, rc.config.Workers); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	output, err := rc.storage.Load()
	if err != nil {
		return err
	}
	if err := rc.formatter.PrintMetaStats(output); err != nil {
		return err
	}

	if rc.config.Flags.OpenFailures && len(failures) > 0 {
		return rc.viewer.View(output)
	}

	if len(failures) > 0 || output.Meta.FailedTestFiles > 0 {
		return fmt.Errorf("%d test file(s) failed", output.Meta.FailedTestFiles)
	}
	return nil
}
