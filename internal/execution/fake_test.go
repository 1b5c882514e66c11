package execution

import (
	"context"
	"sync"
	"time"

	"gtp/internal/domain"
)

type interval struct {
	start, end time.Time
}

// fakeExecutor records concurrency and call order instead of running a binary
type fakeExecutor struct {
	mu          sync.Mutex
	delay       time.Duration
	failing     map[domain.SuiteID]bool
	hooks       map[domain.SuiteID]func()
	calls       map[domain.SuiteID]int
	order       []domain.SuiteID
	intervals   map[domain.SuiteID]interval
	inFlight    int
	maxInFlight int
}

func newFakeExecutor(delay time.Duration) *fakeExecutor {
	return &fakeExecutor{
		delay:     delay,
		failing:   make(map[domain.SuiteID]bool),
		hooks:     make(map[domain.SuiteID]func()),
		calls:     make(map[domain.SuiteID]int),
		intervals: make(map[domain.SuiteID]interval),
	}
}

func (f *fakeExecutor) Execute(ctx context.Context, suite domain.SuiteID) domain.ExecutionOutcome {
	f.mu.Lock()
	f.calls[suite]++
	f.order = append(f.order, suite)
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	hook := f.hooks[suite]
	f.mu.Unlock()

	start := time.Now()
	if hook != nil {
		hook()
	}
	time.Sleep(f.delay)
	end := time.Now()

	f.mu.Lock()
	f.inFlight--
	f.intervals[suite] = interval{start: start, end: end}
	failed := f.failing[suite]
	f.mu.Unlock()

	outcome := domain.ExecutionOutcome{Suite: suite, Status: domain.StatusPassed}
	if failed {
		outcome.Status = domain.StatusFailed
		outcome.Process.Reason = domain.ReasonNonZeroExit
	}
	return outcome
}

// fakeProgress records the last update
type fakeProgress struct {
	mu       sync.Mutex
	passed   int
	failed   int
	updates  int
	finished bool
}

func (p *fakeProgress) Update(passed, failed int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.passed, p.failed = passed, failed
	p.updates++
}

func (p *fakeProgress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finished = true
}
