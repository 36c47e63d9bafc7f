package config

import "time"

const (
	// DefaultExtensionRoot is the default extension development root
	DefaultExtensionRoot = "."
	// DefaultTestEntry is the default test entry module handed to the host
	DefaultTestEntry = "./out/test"
	// DefaultTestRoot is the default root for test file discovery
	DefaultTestRoot = "./out/test"
	// DefaultTestSuffix is the filename convention test files must match
	DefaultTestSuffix = ".test.js"
	// DefaultHostBinary is the host application binary looked up in PATH
	DefaultHostBinary = "code"
	// DefaultEngineUI selects suite/test declaration semantics in the engine
	DefaultEngineUI = "tdd"
	// DefaultRunTimeout is the ceiling for a single engine run
	DefaultRunTimeout = 120 * time.Second
	// DefaultWorkers is the default number of parallel workers
	DefaultWorkers = 4
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "smoke-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".xsmoke"
	// DefaultConfigFile is the optional YAML config file name
	DefaultConfigFile = ".xsmoke.yaml"
)

// DefaultSkipDirs are directories never descended into during discovery
var DefaultSkipDirs = []string{
	"node_modules",
	"coverage",
}
