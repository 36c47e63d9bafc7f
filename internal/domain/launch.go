package domain

// LaunchConfig describes one isolated host instance: where the extension
// under development lives, which test entry module the host should invoke,
// and which workspace to open. Built once per invocation, never mutated.
type LaunchConfig struct {
	ExtensionRoot     string // development root of the extension under test
	TestEntry         string // module the host invokes to start the test run
	Workspace         string // workspace folder opened in the instance
	DisableExtensions bool   // keep sibling extensions out of the instance
}

// Args renders the host command-line arguments for this configuration.
func (lc LaunchConfig) Args() []string {
	args := []string{
		"--extensionDevelopmentPath=" + lc.ExtensionRoot,
		"--extensionTestsPath=" + lc.TestEntry,
	}
	if lc.DisableExtensions {
		args = append(args, "--disable-extensions")
	}
	if lc.Workspace != "" {
		args = append(args, lc.Workspace)
	}
	return args
}
