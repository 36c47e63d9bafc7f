package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional .xsmoke.yaml config file. Zero values
// mean "keep the default".
type fileConfig struct {
	HostBinary    string   `yaml:"host_binary"`
	ExtensionRoot string   `yaml:"extension_root"`
	TestEntry     string   `yaml:"test_entry"`
	Workspace     string   `yaml:"workspace"`
	TestRoot      string   `yaml:"test_root"`
	TestSuffix    string   `yaml:"test_suffix"`
	SkipDirs      []string `yaml:"skip_dirs"`
	Engine        string   `yaml:"engine"`
	EngineUI      string   `yaml:"engine_ui"`
	TimeoutSecs   int      `yaml:"timeout_seconds"`
	Workers       int      `yaml:"workers"`
}

// applyFile overlays values from the YAML config file, if present. A missing
// file is not an error; an unparsable one is ignored the same way a missing
// .env is (flags still win).
func (c *Config) applyFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}

	if fc.HostBinary != "" {
		c.HostBinary = fc.HostBinary
	}
	if fc.ExtensionRoot != "" {
		c.ExtensionRoot = fc.ExtensionRoot
	}
	if fc.TestEntry != "" {
		c.TestEntry = fc.TestEntry
	}
	if fc.Workspace != "" {
		c.Workspace = fc.Workspace
	}
	if fc.TestRoot != "" {
		c.TestRoot = fc.TestRoot
	}
	if fc.TestSuffix != "" {
		c.TestSuffix = fc.TestSuffix
	}
	if len(fc.SkipDirs) > 0 {
		c.SkipDirs = fc.SkipDirs
	}
	if fc.Engine != "" {
		c.EngineBinary = fc.Engine
	}
	if fc.EngineUI != "" {
		c.EngineUI = fc.EngineUI
	}
	if fc.TimeoutSecs > 0 {
		c.RunTimeout = time.Duration(fc.TimeoutSecs) * time.Second
	}
	if fc.Workers > 0 {
		c.Workers = fc.Workers
	}
}
