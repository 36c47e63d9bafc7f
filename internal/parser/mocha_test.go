package parser

import (
	"strings"
	"testing"

	"xsmoke/internal/domain"
)

const passingOutput = `
  Extension smoke
    ✓ activates the extension
    ✓ registers the tree view

  2 passing (1s)
`

const failingOutput = `
  Extension smoke
    ✓ activates the extension
    1) contributes the tree view
    2) registers all commands

  1 passing (2s)
  2 failing

  1) Extension smoke
       contributes the tree view:
     Error: expected view 'todoTree' to be registered
      at Context.<anonymous> (out/test/views.test.js:12:11)
      at process.processImmediate (node:internal/timers:478:21)

  2) Extension smoke
       registers all commands:
     AssertionError: expected [ Array(2) ] to include 'todo.refresh'
      at Context.<anonymous> (out/test/commands.test.js:27:15)
`

func TestMochaParser_ParseTestCounts(t *testing.T) {
	p := NewMochaParser()

	tests := []struct {
		name       string
		result     domain.TestResult
		wantPassed int
		wantFailed int
	}{
		{
			name:       "all passing",
			result:     domain.TestResult{Success: true, Output: passingOutput},
			wantPassed: 2,
			wantFailed: 0,
		},
		{
			name:       "mixed summary",
			result:     domain.TestResult{Success: false, Output: failingOutput},
			wantPassed: 1,
			wantFailed: 2,
		},
		{
			name:       "no summary falls back to file success",
			result:     domain.TestResult{Success: true, Output: "garbage"},
			wantPassed: 1,
			wantFailed: 0,
		},
		{
			name:       "no summary falls back to file failure",
			result:     domain.TestResult{Success: false, Output: "garbage"},
			wantPassed: 0,
			wantFailed: 1,
		},
		{
			name:       "colorized summary",
			result:     domain.TestResult{Success: false, Output: "  \x1b[32m3 passing\x1b[0m\n  \x1b[31m1 failing\x1b[0m\n"},
			wantPassed: 3,
			wantFailed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, failed := p.ParseTestCounts(tt.result)
			if passed != tt.wantPassed || failed != tt.wantFailed {
				t.Errorf("expected (%d,%d), got (%d,%d)", tt.wantPassed, tt.wantFailed, passed, failed)
			}
		})
	}
}

func TestMochaParser_FailureCount(t *testing.T) {
	p := NewMochaParser()

	count := p.FailureCount(domain.TestResult{Success: false, Output: failingOutput})
	if count != 2 {
		t.Errorf("expected 2 failures, got %d", count)
	}
}

func TestMochaParser_ParseFailures(t *testing.T) {
	p := NewMochaParser()

	failures := p.ParseFailures(domain.TestResult{
		TestPath: "out/test/views.test.js",
		Success:  false,
		Output:   failingOutput,
	})

	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d: %+v", len(failures), failures)
	}

	first := failures[0]
	if !strings.Contains(first.TestName, "contributes the tree view") {
		t.Errorf("unexpected test name: %q", first.TestName)
	}
	if !strings.Contains(first.Message, "expected view 'todoTree' to be registered") {
		t.Errorf("unexpected message: %q", first.Message)
	}
	if first.File != "out/test/views.test.js" {
		t.Errorf("expected failure file out/test/views.test.js, got %q", first.File)
	}
	if first.Line != 12 {
		t.Errorf("expected failure line 12, got %d", first.Line)
	}
	if len(first.StackTrace) != 2 {
		t.Errorf("expected 2 stack frames, got %d", len(first.StackTrace))
	}

	second := failures[1]
	if !strings.Contains(second.TestName, "registers all commands") {
		t.Errorf("unexpected test name: %q", second.TestName)
	}
	if second.File != "out/test/commands.test.js" || second.Line != 27 {
		t.Errorf("unexpected failure location: %s:%d", second.File, second.Line)
	}
}

func TestMochaParser_ParseFailures_SkipsProgressLines(t *testing.T) {
	p := NewMochaParser()

	// The progress section numbers failing cases too, but without the
	// indented "name:" body; those lines must not produce failures.
	output := `
  Extension smoke
    1) contributes the tree view

  0 passing (1s)
  1 failing

  1) Extension smoke
       contributes the tree view:
     Error: boom
      at Context.<anonymous> (out/test/views.test.js:5:3)
`
	failures := p.ParseFailures(domain.TestResult{Success: false, Output: output})
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d: %+v", len(failures), failures)
	}
}
