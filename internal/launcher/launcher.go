// Package launcher starts one isolated host instance with the extension
// under test loaded and its test entry point as the thing to run. A failed
// launch is meant to fail the enclosing build: callers convert any error
// into a non-zero process exit, with no retry.
package launcher

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"xsmoke/internal/config"
	"xsmoke/internal/domain"
)

// Launcher starts the host application for a smoke run
type Launcher struct {
	config *config.Config
}

// New creates a new Launcher
func New(cfg *config.Config) *Launcher {
	return &Launcher{config: cfg}
}

// BuildLaunchConfig resolves the extension root and test entry to absolute
// paths and validates both exist. Sibling extension loading is always
// disabled so nothing else interferes with the instance.
func (l *Launcher) BuildLaunchConfig() (domain.LaunchConfig, error) {
	extRoot, err := resolveExisting(l.config.ExtensionRoot)
	if err != nil {
		return domain.LaunchConfig{}, fmt.Errorf("extension root: %w", err)
	}
	testEntry, err := resolveExisting(l.config.TestEntry)
	if err != nil {
		return domain.LaunchConfig{}, fmt.Errorf("test entry: %w", err)
	}

	return domain.LaunchConfig{
		ExtensionRoot:     extRoot,
		TestEntry:         testEntry,
		Workspace:         l.config.Workspace,
		DisableExtensions: true,
	}, nil
}

// Launch spawns exactly one host process and waits for it. Host stdio is
// passed through so the test run's reporting reaches the terminal. The
// returned error is the child's completion state.
func (l *Launcher) Launch(ctx context.Context) error {
	lc, err := l.BuildLaunchConfig()
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, l.config.HostBinary, lc.Args()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("host launch failed: %w", err)
	}
	return nil
}

// resolveExisting turns path absolute and requires it to exist on disk.
func resolveExisting(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("path does not exist: %s", abs)
	}
	return abs, nil
}
