package execution

import (
	"context"
	"sync"

	"gtp/internal/domain"
)

// WorkerPool runs suites on a fixed number of workers draining a shared queue
type WorkerPool struct {
	executor Executor
	workers  int
}

// NewWorkerPool creates a new WorkerPool, workers below 1 are raised to 1
func NewWorkerPool(executor Executor, workers int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	return &WorkerPool{
		executor: executor,
		workers:  workers,
	}
}

// Execute runs every suite exactly once; at most wp.workers run at the same time.
// onDone is called from the worker goroutine after each suite finishes, so it must be safe for
// concurrent use. Execute returns once every suite has been handed to onDone.
func (wp *WorkerPool) Execute(ctx context.Context, suites []domain.SuiteID, onDone func(domain.ExecutionOutcome)) {
	if len(suites) == 0 {
		return
	}

	queue := make(chan domain.SuiteID, len(suites))
	for _, suite := range suites {
		queue <- suite
	}
	close(queue)

	workerCount := min(wp.workers, len(suites))

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for suite := range queue {
				outcome := wp.executor.Execute(ctx, suite)
				outcome.Class = domain.ParallelSafe
				onDone(outcome)
			}
		}()
	}
	wg.Wait()
}
