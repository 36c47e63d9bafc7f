package engine

import (
	"context"

	"xsmoke/internal/domain"
)

// Engine is the test execution engine boundary. Files are registered one by
// one, then the whole suite runs exactly once; the engine reports the total
// failure count through the completion callback.
type Engine interface {
	AddFile(path string)
	Run(onComplete func(failures int)) error
}

// FileRunner executes a single registered file, used by the parallel
// executor. Separate from Engine: the aggregation runner never runs
// per-file.
type FileRunner interface {
	RunFile(ctx context.Context, path string, workerID int) domain.TestResult
}
