package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"

	"xsmoke/internal/config"
	"xsmoke/internal/domain"
	"xsmoke/internal/parser"
)

// Mocha drives the mocha binary. Registered files accumulate until Run,
// which spawns one engine process over the whole set.
type Mocha struct {
	config *config.Config
	parser *parser.MochaParser
	files  []string
}

// NewMocha creates a new Mocha engine
func NewMocha(cfg *config.Config, p *parser.MochaParser) *Mocha {
	return &Mocha{config: cfg, parser: p}
}

// AddFile registers a test file for the next Run
func (m *Mocha) AddFile(path string) {
	m.files = append(m.files, path)
}

// Files returns the registered files in registration order
func (m *Mocha) Files() []string {
	return m.files
}

// Run executes the full registered suite exactly once and reports the
// failure count through onComplete. The engine enforces the per-run timeout
// itself (--timeout); once started the run cannot be aborted. A spawn
// failure is returned without invoking the callback.
func (m *Mocha) Run(onComplete func(failures int)) error {
	if len(m.files) == 0 {
		onComplete(0)
		return nil
	}

	ctx := context.Background()
	args := m.args(m.files...)
	cmd := exec.CommandContext(ctx, m.config.GetEngineBinary(), args...)
	cmd.Dir = m.config.ExtensionRoot

	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("failed to start test engine: %w", err)
		}
	}
	// Echo the engine's own (colorized) reporting.
	os.Stdout.Write(output)

	result := domain.TestResult{
		Success: err == nil,
		Output:  string(output),
		Error:   err,
	}
	onComplete(m.parser.FailureCount(result))
	return nil
}

// RunFile executes the engine for a single test file
func (m *Mocha) RunFile(ctx context.Context, path string, workerID int) domain.TestResult {
	args := m.args(path)
	cmd := exec.CommandContext(ctx, m.config.GetEngineBinary(), args...)
	cmd.Dir = m.config.ExtensionRoot

	// Let test files isolate per-worker scratch state.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, fmt.Sprintf("XSMOKE_WORKER=%d", workerID))

	start := time.Now()
	output, err := cmd.CombinedOutput()

	return domain.TestResult{
		TestPath: path,
		Success:  err == nil,
		Output:   string(output),
		Error:    err,
		Duration: time.Since(start),
	}
}

// args renders the engine invocation: suite-style declarations, colorized
// reporting, per-run timeout ceiling.
func (m *Mocha) args(files ...string) []string {
	args := []string{
		"--ui", m.config.EngineUI,
		"--colors",
		"--timeout", strconv.Itoa(m.config.EngineTimeoutMillis()),
		"--reporter", "spec",
	}
	return append(args, files...)
}
