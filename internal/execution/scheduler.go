package execution

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"gtp/internal/config"
	"gtp/internal/domain"
)

// Progress receives running pass/fail counts while suites complete
type Progress interface {
	Update(passed, failed int)
	Finish()
}

// Scheduler runs the parallel and serial lanes side by side
type Scheduler struct {
	executor Executor
	progress Progress
	log      logrus.FieldLogger
}

// NewScheduler creates a new Scheduler
func NewScheduler(executor Executor, log logrus.FieldLogger) *Scheduler {
	return &Scheduler{
		executor: executor,
		log:      log.WithField("component", "scheduler"),
	}
}

// SetProgress sets the progress sink for the next run
func (s *Scheduler) SetProgress(progress Progress) {
	s.progress = progress
}

// Run executes every discovered suite once and returns one outcome per suite,
// in discovery order.
// ParallelSafe suites share a pool of jobs workers while SerialOnly suites run one at
// a time in discovery order, and both lanes run concurrently.
// A jobs value of zero or less means min(config.DefaultMaxJobs, discovery.Total()).
func (s *Scheduler) Run(ctx context.Context, discovery domain.DiscoveryResult, jobs int) []domain.ExecutionOutcome {
	jobs = defaultJobs(jobs, discovery.Total())
	collected := &collector{progress: s.progress}
	start := time.Now()

	var g errgroup.Group
	g.Go(func() error {
		if len(discovery.Parallel) == 0 {
			return nil
		}
		s.log.WithFields(logrus.Fields{
			"suites": len(discovery.Parallel),
			"jobs":   jobs,
		}).Info("running parallel test suites concurrently")

		NewWorkerPool(s.executor, jobs).Execute(ctx, discovery.Parallel, collected.add)
		return nil
	})
	g.Go(func() error {
		if len(discovery.Serial) == 0 {
			return nil
		}
		s.log.WithField("suites", len(discovery.Serial)).Info("running serial test suites sequentially")

		for _, suite := range discovery.Serial {
			outcome := s.executor.Execute(ctx, suite)
			outcome.Class = domain.SerialOnly
			collected.add(outcome)
		}
		return nil
	})
	_ = g.Wait()

	if s.progress != nil {
		s.progress.Finish()
	}

	outcomes := collected.list()
	sortByDiscovery(outcomes, discovery)
	s.log.WithFields(logrus.Fields{
		"suites":   len(outcomes),
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("all lanes drained")
	return outcomes
}

func defaultJobs(jobs, total int) int {
	if jobs > 0 {
		return jobs
	}
	return max(1, min(config.DefaultMaxJobs, total))
}

// sortByDiscovery orders outcomes like discovery.All, so reports do not depend on completion order
func sortByDiscovery(outcomes []domain.ExecutionOutcome, discovery domain.DiscoveryResult) {
	index := make(map[domain.SuiteID]int, discovery.Total())
	for i, suite := range discovery.All() {
		index[suite] = i
	}
	sort.SliceStable(outcomes, func(i, j int) bool {
		return index[outcomes[i].Suite] < index[outcomes[j].Suite]
	})
}

// collector gathers outcomes from both lanes
type collector struct {
	mu       sync.Mutex
	outcomes []domain.ExecutionOutcome
	passed   int
	failed   int
	progress Progress
}

func (c *collector) add(outcome domain.ExecutionOutcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.outcomes = append(c.outcomes, outcome)
	if outcome.Succeeded() {
		c.passed++
	} else {
		c.failed++
	}
	if c.progress != nil {
		c.progress.Update(c.passed, c.failed)
	}
}

func (c *collector) list() []domain.ExecutionOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.ExecutionOutcome, len(c.outcomes))
	copy(out, c.outcomes)
	return out
}
