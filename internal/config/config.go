package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness
type Config struct {
	// Launch settings
	HostBinary    string
	ExtensionRoot string
	TestEntry     string
	Workspace     string

	// Discovery settings
	TestRoot   string
	TestSuffix string
	SkipDirs   []string

	// Engine settings
	EngineBinary string
	EngineUI     string
	RunTimeout   time.Duration

	// Execution settings
	Workers int

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	WorkerCount   int
	TestRoot      string
	Workspace     string
	NameFilter    string
	FailFast      bool
	OpenFailures  bool
	ExtensionRoot string
	TestEntry     string
	HostBinary    string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		HostBinary:     DefaultHostBinary,
		ExtensionRoot:  DefaultExtensionRoot,
		TestEntry:      DefaultTestEntry,
		TestRoot:       DefaultTestRoot,
		TestSuffix:     DefaultTestSuffix,
		EngineUI:       DefaultEngineUI,
		RunTimeout:     DefaultRunTimeout,
		Workers:        DefaultWorkers,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.SkipDirs = make([]string, len(DefaultSkipDirs))
	copy(cfg.SkipDirs, DefaultSkipDirs)
	return cfg
}

// Load builds the effective config: defaults, then the optional YAML file,
// then .env variables, then flag overrides. The result is not mutated after
// this returns.
func Load(flags Flags) *Config {
	cfg := New()
	cfg.LoadEnvironment()
	cfg.ApplyFlags(flags)
	return cfg
}

// LoadEnvironment overlays the YAML config file and .env variables onto the
// defaults. Called once, before commands are wired up.
func (c *Config) LoadEnvironment() {
	c.applyFile(DefaultConfigFile)
	c.applyEnv()
}

// ApplyFlags overlays parsed flag values. Called once, after flag parsing;
// the config is read-only from then on.
func (c *Config) ApplyFlags(flags Flags) {
	c.applyFlags(flags)
}

// applyEnv overlays XSMOKE_* variables, loading a .env file from the
// extension root first if one exists.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ExtensionRoot, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if v := os.Getenv("XSMOKE_HOST_BINARY"); v != "" {
		c.HostBinary = v
	}
	if v := os.Getenv("XSMOKE_WORKSPACE"); v != "" {
		c.Workspace = v
	}
	if v := os.Getenv("XSMOKE_ENGINE"); v != "" {
		c.EngineBinary = v
	}
}

func (c *Config) applyFlags(flags Flags) {
	c.Flags = flags
	if flags.WorkerCount > 0 {
		c.Workers = flags.WorkerCount
	}
	if flags.ExtensionRoot != "" {
		c.ExtensionRoot = flags.ExtensionRoot
	}
	if flags.TestEntry != "" {
		c.TestEntry = flags.TestEntry
	}
	if flags.HostBinary != "" {
		c.HostBinary = flags.HostBinary
	}
	if flags.Workspace != "" {
		c.Workspace = flags.Workspace
	}
}

// GetTestRoot returns the discovery root, using the flag if provided
func (c *Config) GetTestRoot() string {
	if c.Flags.TestRoot != "" {
		if filepath.IsAbs(c.Flags.TestRoot) {
			return c.Flags.TestRoot
		}
		return filepath.Join(c.ExtensionRoot, c.Flags.TestRoot)
	}
	return filepath.Join(c.ExtensionRoot, c.TestRoot)
}

// GetOutputPath returns the full path to the output JSON file. Resolves to
// an absolute path so run and failures always read/write the same file
// regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ExtensionRoot, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetEngineBinary returns the path to the test engine binary
func (c *Config) GetEngineBinary() string {
	if c.EngineBinary != "" {
		return c.EngineBinary
	}
	return filepath.Join(c.ExtensionRoot, "node_modules", ".bin", "mocha")
}

// EngineTimeoutMillis returns the per-run timeout in milliseconds, the unit
// the engine's --timeout flag expects.
func (c *Config) EngineTimeoutMillis() int {
	return int(c.RunTimeout / time.Millisecond)
}
