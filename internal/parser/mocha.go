package parser

import (
	"fmt"
	"regexp"
	"strings"

	"xsmoke/internal/domain"
)

// MochaParser parses mocha spec-reporter output
type MochaParser struct{}

// NewMochaParser creates a new MochaParser
func NewMochaParser() *MochaParser {
	return &MochaParser{}
}

var (
	passingPattern = regexp.MustCompile(`(\d+)\s+passing`)
	failingPattern = regexp.MustCompile(`(\d+)\s+failing`)
	// "  3) Suite name" — start of a failure detail block
	failureHeadPattern = regexp.MustCompile(`^\s*(\d+)\)\s+(.+)$`)
	// "      at Context.<anonymous> (out/test/views.test.js:12:11)"
	stackFramePattern = regexp.MustCompile(`^\s+at\s+.*\(?([^()\s]+):(\d+):\d+\)?\s*$`)
)

// ParseTestCounts extracts passed and failed case counts from the engine
// summary. If no summary is present, falls back to one "test" per file:
// (1,0) on success, (0,1) on failure.
func (p *MochaParser) ParseTestCounts(result domain.TestResult) (passed, failed int) {
	output := stripANSI(result.Output)

	if m := passingPattern.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &passed)
	}
	if m := failingPattern.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &failed)
	}
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	if result.Success {
		return 1, 0
	}
	return 0, 1
}

// FailureCount returns just the failing-case count from the summary, with
// the same file-level fallback as ParseTestCounts.
func (p *MochaParser) FailureCount(result domain.TestResult) int {
	_, failed := p.ParseTestCounts(result)
	return failed
}

// ParseFailures parses the failure detail blocks the engine prints after the
// summary. Each block looks like:
//
//	1) Suite name
//	     test name:
//	   Error: expected view to be registered
//	    at Context.<anonymous> (out/test/views.test.js:12:11)
func (p *MochaParser) ParseFailures(result domain.TestResult) []domain.Failure {
	var failures []domain.Failure
	lines := strings.Split(stripANSI(result.Output), "\n")

	for i := 0; i < len(lines); i++ {
		m := failureHeadPattern.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		// Progress output also numbers failed cases ("1) test name") but
		// without a detail body; require an indented follow-up line ending
		// in ':' to treat this as a detail block.
		if i+1 >= len(lines) || !strings.HasSuffix(strings.TrimSpace(lines[i+1]), ":") {
			continue
		}

		failure, next := p.parseFailureBlock(lines, i, m[2], result.TestPath)
		failures = append(failures, *failure)
		i = next - 1
	}

	return failures
}

// parseFailureBlock consumes one detail block starting at the header line.
// Returns the parsed failure and the index of the first line past the block.
func (p *MochaParser) parseFailureBlock(lines []string, start int, suite, testPath string) (*domain.Failure, int) {
	failure := &domain.Failure{
		FilePath:   testPath,
		StackTrace: []string{},
	}

	j := start + 1
	// Indented lines ending with ':' carry the (possibly nested) test name.
	var nameParts []string
	for ; j < len(lines); j++ {
		trimmed := strings.TrimSpace(lines[j])
		if !strings.HasSuffix(trimmed, ":") {
			break
		}
		nameParts = append(nameParts, strings.TrimSuffix(trimmed, ":"))
	}
	failure.TestName = strings.TrimSpace(suite + " " + strings.Join(nameParts, " "))

	var messageLines []string
	for ; j < len(lines); j++ {
		line := lines[j]
		trimmed := strings.TrimSpace(line)

		if failureHeadPattern.MatchString(line) {
			break
		}
		// Two consecutive blank lines end the block; a single one may
		// separate message from stack.
		if trimmed == "" {
			if j+1 < len(lines) && strings.TrimSpace(lines[j+1]) == "" {
				break
			}
			continue
		}

		if sm := stackFramePattern.FindStringSubmatch(line); sm != nil {
			failure.StackTrace = append(failure.StackTrace, trimmed)
			if failure.File == "" && !strings.Contains(sm[1], "node_modules") && !strings.HasPrefix(sm[1], "node:") {
				failure.File = sm[1]
				fmt.Sscanf(sm[2], "%d", &failure.Line)
			}
			continue
		}

		messageLines = append(messageLines, trimmed)
	}

	failure.Message = strings.Join(messageLines, "\n")
	failure.ErrorDetails = failure.Message

	return failure, j
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes color escape sequences; the engine runs with --colors.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
