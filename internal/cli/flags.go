package cli

import "xsmoke/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		WorkerCount:   f.WorkerCount,
		TestRoot:      f.TestRoot,
		Workspace:     f.Workspace,
		NameFilter:    f.NameFilter,
		FailFast:      f.FailFast,
		OpenFailures:  f.OpenFailures,
		ExtensionRoot: f.ExtensionRoot,
		TestEntry:     f.TestEntry,
		HostBinary:    f.HostBinary,
	}
}
