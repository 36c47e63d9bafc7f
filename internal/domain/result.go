package domain

import "time"

// TestResult represents the result of executing a test file
type TestResult struct {
	TestPath string        // Path to the test file that was executed
	Success  bool          // Whether every case in the file passed
	Output   string        // Raw engine output
	Error    error         // Error if the engine process failed to run
	Duration time.Duration // Time taken to execute
}

// RunMeta contains metadata about a smoke run
type RunMeta struct {
	TotalTestFiles  int     `json:"total_test_files"`
	FailedTestFiles int     `json:"failed_test_files"`
	PassedTestFiles int     `json:"passed_test_files"`
	FailedTestCases int     `json:"failed_test_cases"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure for a run
type RunOutput struct {
	Meta    RunMeta   `json:"meta"`
	Details []Failure `json:"details"`
}
