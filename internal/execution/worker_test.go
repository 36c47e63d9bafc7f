package execution

import (
	"context"
	"sync"
	"testing"

	"xsmoke/internal/config"
	"xsmoke/internal/domain"
	"xsmoke/internal/parser"
)

// fakeFileRunner fails the files listed in failing and records what ran.
type fakeFileRunner struct {
	mu      sync.Mutex
	ran     []string
	failing map[string]bool
}

func (f *fakeFileRunner) RunFile(ctx context.Context, path string, workerID int) domain.TestResult {
	f.mu.Lock()
	f.ran = append(f.ran, path)
	f.mu.Unlock()

	if f.failing[path] {
		return domain.TestResult{TestPath: path, Success: false, Output: "1 failing"}
	}
	return domain.TestResult{TestPath: path, Success: true, Output: "1 passing"}
}

func newTestPool(runner *fakeFileRunner, workers int) *WorkerPool {
	cfg := config.New()
	cfg.Workers = workers
	return NewWorkerPool(cfg, runner, NewRoundRobinScheduler(), parser.NewMochaParser())
}

func TestWorkerPool_Execute(t *testing.T) {
	t.Run("runs every file exactly once", func(t *testing.T) {
		runner := &fakeFileRunner{}
		pool := newTestPool(runner, 3)

		tests := []string{"/a.test.js", "/b.test.js", "/c.test.js", "/d.test.js"}
		results, _, err := pool.Execute(tests)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(results) != len(tests) {
			t.Errorf("expected %d results, got %d", len(tests), len(results))
		}
		if len(runner.ran) != len(tests) {
			t.Errorf("expected %d executions, got %d", len(tests), len(runner.ran))
		}
		seen := make(map[string]bool)
		for _, path := range runner.ran {
			if seen[path] {
				t.Errorf("file executed twice: %s", path)
			}
			seen[path] = true
		}
	})

	t.Run("reports per-file outcomes", func(t *testing.T) {
		runner := &fakeFileRunner{failing: map[string]bool{"/b.test.js": true}}
		pool := newTestPool(runner, 2)

		results, _, err := pool.Execute([]string{"/a.test.js", "/b.test.js"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		failed := 0
		for _, r := range results {
			if !r.Success {
				failed++
				if r.TestPath != "/b.test.js" {
					t.Errorf("unexpected failing file: %s", r.TestPath)
				}
			}
		}
		if failed != 1 {
			t.Errorf("expected 1 failing file, got %d", failed)
		}
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		pool := newTestPool(&fakeFileRunner{}, 2)
		results, duration, err := pool.Execute(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results != nil || duration != 0 {
			t.Errorf("expected empty outcome, got %v (%s)", results, duration)
		}
	})

	t.Run("fail-fast with one worker stops after the failure", func(t *testing.T) {
		runner := &fakeFileRunner{failing: map[string]bool{"/a.test.js": true}}
		pool := newTestPool(runner, 1)

		_, _, err := pool.ExecuteWithOptions([]string{"/a.test.js", "/b.test.js", "/c.test.js"}, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(runner.ran) != 1 {
			t.Errorf("expected exactly 1 execution before stopping, got %d: %v", len(runner.ran), runner.ran)
		}
	})
}
