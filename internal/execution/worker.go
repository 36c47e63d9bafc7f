package execution

import (
	"context"
	"sync"
	"time"

	"xsmoke/internal/config"
	"xsmoke/internal/domain"
	"xsmoke/internal/engine"
	"xsmoke/internal/parser"
	"xsmoke/internal/ui"
)

// WorkerPool runs one engine process per test file across a pool of workers
type WorkerPool struct {
	config    *config.Config
	runner    engine.FileRunner
	scheduler Scheduler
	parser    *parser.MochaParser
	progress  *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner engine.FileRunner, scheduler Scheduler, mochaParser *parser.MochaParser) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
		parser:    mochaParser,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute runs all test files in parallel (no fail-fast).
func (wp *WorkerPool) Execute(tests []string) ([]domain.TestResult, time.Duration, error) {
	return wp.ExecuteWithOptions(tests, false)
}

// ExecuteWithOptions runs test files with optional fail-fast (stop scheduling
// after the first failing file).
func (wp *WorkerPool) ExecuteWithOptions(tests []string, failFast bool) ([]domain.TestResult, time.Duration, error) {
	if len(tests) == 0 {
		return nil, 0, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}
	batches := wp.scheduler.Schedule(tests, workerCount)

	results := make(chan domain.TestResult, len(tests))

	var mu sync.Mutex
	var completedFiles int
	var passedCases, failedCases int
	var seenFailure bool
	startTime := time.Now()

	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		go func(workerID int, batch []string) {
			defer wg.Done()
			for _, testPath := range batch {
				if failFast {
					mu.Lock()
					done := seenFailure
					mu.Unlock()
					if done {
						return
					}
				}

				result := wp.runner.RunFile(ctx, testPath, workerID)
				results <- result

				mu.Lock()
				completedFiles++
				p, f := wp.parser.ParseTestCounts(result)
				passedCases += p
				failedCases += f
				if wp.progress != nil {
					wp.progress.Update(completedFiles, passedCases, failedCases)
				}
				if failFast && !result.Success {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}(i+1, batch)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.TestResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
