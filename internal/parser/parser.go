package parser

import "xsmoke/internal/domain"

// Parser parses engine output and extracts failures
type Parser interface {
	ParseTestCounts(result domain.TestResult) (passed, failed int)
	ParseFailures(result domain.TestResult) []domain.Failure
}
