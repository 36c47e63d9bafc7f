package execution

import (
	"time"

	"xsmoke/internal/domain"
)

// Executor executes test files and returns per-file results
type Executor interface {
	Execute(tests []string) ([]domain.TestResult, time.Duration, error)
}
