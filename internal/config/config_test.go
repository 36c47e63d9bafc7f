package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_GetTestRoot(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ExtensionRoot: ".",
				TestRoot:      "out/test",
				Flags:         Flags{},
			},
			expected: "out/test",
		},
		{
			name: "with test root flag",
			config: &Config{
				ExtensionRoot: "/project",
				TestRoot:      "out/test",
				Flags: Flags{
					TestRoot: "dist/test",
				},
			},
			expected: "/project/dist/test",
		},
		{
			name: "absolute test root flag",
			config: &Config{
				ExtensionRoot: "/project",
				TestRoot:      "out/test",
				Flags: Flags{
					TestRoot: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestRoot()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.TestSuffix != DefaultTestSuffix {
		t.Errorf("expected TestSuffix %s, got %s", DefaultTestSuffix, cfg.TestSuffix)
	}

	if cfg.RunTimeout != DefaultRunTimeout {
		t.Errorf("expected RunTimeout %s, got %s", DefaultRunTimeout, cfg.RunTimeout)
	}

	if cfg.Workers != DefaultWorkers {
		t.Errorf("expected Workers %d, got %d", DefaultWorkers, cfg.Workers)
	}

	if len(cfg.SkipDirs) != len(DefaultSkipDirs) {
		t.Errorf("expected %d skip dirs, got %d", len(DefaultSkipDirs), len(cfg.SkipDirs))
	}
}

func TestConfig_EngineTimeoutMillis(t *testing.T) {
	cfg := New()

	if got := cfg.EngineTimeoutMillis(); got != 120000 {
		t.Errorf("expected 120000, got %d", got)
	}

	cfg.RunTimeout = 5 * time.Second
	if got := cfg.EngineTimeoutMillis(); got != 5000 {
		t.Errorf("expected 5000, got %d", got)
	}
}

func TestConfig_GetEngineBinary(t *testing.T) {
	t.Run("default under node_modules", func(t *testing.T) {
		cfg := New()
		cfg.ExtensionRoot = "/project"
		want := filepath.Join("/project", "node_modules", ".bin", "mocha")
		if got := cfg.GetEngineBinary(); got != want {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("explicit binary wins", func(t *testing.T) {
		cfg := New()
		cfg.EngineBinary = "/usr/local/bin/mocha"
		if got := cfg.GetEngineBinary(); got != "/usr/local/bin/mocha" {
			t.Errorf("expected explicit binary, got %s", got)
		}
	})
}

func TestConfig_ApplyFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "xsmoke-config-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	t.Run("overlays present values only", func(t *testing.T) {
		path := filepath.Join(tmpDir, ".xsmoke.yaml")
		yaml := "host_binary: code-insiders\ntimeout_seconds: 30\nskip_dirs:\n  - node_modules\n  - fixtures\n"
		if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		cfg := New()
		cfg.applyFile(path)

		if cfg.HostBinary != "code-insiders" {
			t.Errorf("expected host binary override, got %s", cfg.HostBinary)
		}
		if cfg.RunTimeout != 30*time.Second {
			t.Errorf("expected 30s timeout, got %s", cfg.RunTimeout)
		}
		if len(cfg.SkipDirs) != 2 || cfg.SkipDirs[1] != "fixtures" {
			t.Errorf("expected skip dirs override, got %v", cfg.SkipDirs)
		}
		// Untouched values keep their defaults
		if cfg.TestSuffix != DefaultTestSuffix {
			t.Errorf("expected default suffix, got %s", cfg.TestSuffix)
		}
	})

	t.Run("missing file is a no-op", func(t *testing.T) {
		cfg := New()
		cfg.applyFile(filepath.Join(tmpDir, "does-not-exist.yaml"))
		if cfg.HostBinary != DefaultHostBinary {
			t.Errorf("expected defaults untouched, got %s", cfg.HostBinary)
		}
	})
}

func TestConfig_FlagOverrides(t *testing.T) {
	cfg := New()
	cfg.applyFlags(Flags{
		WorkerCount: 8,
		HostBinary:  "codium",
		Workspace:   "/tmp/ws",
	})

	if cfg.Workers != 8 {
		t.Errorf("expected 8 workers, got %d", cfg.Workers)
	}
	if cfg.HostBinary != "codium" {
		t.Errorf("expected codium, got %s", cfg.HostBinary)
	}
	if cfg.Workspace != "/tmp/ws" {
		t.Errorf("expected workspace override, got %s", cfg.Workspace)
	}
}
