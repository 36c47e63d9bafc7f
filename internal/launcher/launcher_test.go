package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"xsmoke/internal/config"
)

func TestLauncher_BuildLaunchConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "xsmoke-launch-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	entry := filepath.Join(tmpDir, "out", "test")
	if err := os.MkdirAll(entry, 0755); err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}

	t.Run("resolves and validates paths", func(t *testing.T) {
		cfg := config.New()
		cfg.ExtensionRoot = tmpDir
		cfg.TestEntry = entry
		cfg.Workspace = "/tmp/workspace"

		lc, err := New(cfg).BuildLaunchConfig()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !filepath.IsAbs(lc.ExtensionRoot) || !filepath.IsAbs(lc.TestEntry) {
			t.Errorf("expected absolute paths, got %s and %s", lc.ExtensionRoot, lc.TestEntry)
		}
		if !lc.DisableExtensions {
			t.Error("expected sibling extensions to be disabled")
		}
	})

	t.Run("rejects missing extension root", func(t *testing.T) {
		cfg := config.New()
		cfg.ExtensionRoot = filepath.Join(tmpDir, "missing")
		cfg.TestEntry = entry

		if _, err := New(cfg).BuildLaunchConfig(); err == nil {
			t.Error("expected error for missing extension root")
		}
	})

	t.Run("rejects missing test entry", func(t *testing.T) {
		cfg := config.New()
		cfg.ExtensionRoot = tmpDir
		cfg.TestEntry = filepath.Join(tmpDir, "missing")

		if _, err := New(cfg).BuildLaunchConfig(); err == nil {
			t.Error("expected error for missing test entry")
		}
	})
}
