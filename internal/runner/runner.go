// Package runner ties discovery to the test engine: it collects the test
// files under a root, feeds them to the engine in a deterministic order,
// runs the suite once, and reduces the outcome to a single pass/fail.
package runner

import (
	"fmt"
	"sort"
	"sync"

	"xsmoke/internal/discovery"
	"xsmoke/internal/engine"
)

// Runner discovers test files and aggregates one engine run
type Runner struct {
	scanner *discovery.Scanner
	filter  *discovery.Filter
	engine  engine.Engine
	root    string
	pattern string
}

// New creates a Runner discovering under root. pattern optionally narrows
// the set by filename (empty means all).
func New(scanner *discovery.Scanner, filter *discovery.Filter, eng engine.Engine, root, pattern string) *Runner {
	return &Runner{
		scanner: scanner,
		filter:  filter,
		engine:  eng,
		root:    root,
		pattern: pattern,
	}
}

// Discover returns the full sorted set of test files under the root. All
// matches are collected before sorting; order is lexicographic ascending so
// re-runs execute in the same order regardless of filesystem iteration.
func (r *Runner) Discover() ([]string, error) {
	files, err := r.scanner.Scan(r.root)
	if err != nil {
		return nil, err
	}
	files = r.filter.FilterByName(files, r.pattern)
	sort.Strings(files)
	return files, nil
}

// Run discovers, registers every file with the engine, executes the suite
// once, and returns nil only if the engine reported zero failures. The
// whole suite is observed before deciding; the caller gets exactly one
// terminal outcome.
func (r *Runner) Run() error {
	files, err := r.Discover()
	if err != nil {
		return err
	}

	for _, f := range files {
		r.engine.AddFile(f)
	}

	// Bridge the engine's completion callback to a single-shot channel. The
	// once guard keeps a misbehaving engine that fires the callback more
	// than once from resolving the run twice.
	done := make(chan error, 1)
	var once sync.Once
	err = r.engine.Run(func(failures int) {
		once.Do(func() {
			if failures > 0 {
				done <- fmt.Errorf("%d tests failed", failures)
			} else {
				done <- nil
			}
		})
	})
	if err != nil {
		return err
	}

	return <-done
}
