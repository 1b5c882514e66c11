package execution

import (
	"context"

	"github.com/sirupsen/logrus"

	"gtp/internal/config"
	"gtp/internal/domain"
	"gtp/internal/storage"
)

// Executor runs one suite and returns its outcome
type Executor interface {
	Execute(ctx context.Context, suite domain.SuiteID) domain.ExecutionOutcome
}

// SuiteExecutor runs the test binary filtered to a single suite
type SuiteExecutor struct {
	config  *config.Config
	runner  CommandRunner
	storage storage.Storage
	log     logrus.FieldLogger
}

// NewSuiteExecutor creates a new SuiteExecutor
func NewSuiteExecutor(cfg *config.Config, runner CommandRunner, st storage.Storage, log logrus.FieldLogger) *SuiteExecutor {
	return &SuiteExecutor{
		config:  cfg,
		runner:  runner,
		storage: st,
		log:     log.WithField("component", "executor"),
	}
}

// Execute runs the suite and writes its JSON report next to the binary.
// The call is bounded by the configured suite timeout when one is set.
func (e *SuiteExecutor) Execute(ctx context.Context, suite domain.SuiteID) domain.ExecutionOutcome {
	log := e.log.WithField("suite", suite)
	reportPath := e.storage.Path(suite)

	if err := e.storage.Remove(suite); err != nil {
		log.WithError(err).Warn("could not remove stale report")
	}

	if e.config.SuiteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.SuiteTimeout)
		defer cancel()
	}

	result := e.runner.Run(ctx, FilterArg(suite), OutputArg(reportPath))
	outcome := domain.ExecutionOutcome{
		Suite:   suite,
		Process: result,
	}

	switch result.Reason {
	case domain.ReasonNone:
		outcome.Status = domain.StatusPassed
		outcome.ReportPath = reportPath
	case domain.ReasonNonZeroExit:
		outcome.Status = domain.StatusFailed
		outcome.ReportPath = reportPath
	case domain.ReasonTimeout:
		outcome.Status = domain.StatusTimedOut
		outcome.ReportPath = reportPath
	default:
		outcome.Status = domain.StatusFailed
	}

	log.WithFields(logrus.Fields{
		"status":    outcome.Status,
		"exit_code": result.ExitCode,
		"duration":  result.Duration,
	}).Debug("suite finished")
	if result.Reason == domain.ReasonInvocation {
		log.WithError(result.Err).Error("could not invoke test binary")
	}

	return outcome
}

// FilterArg selects every test of a suite
func FilterArg(suite domain.SuiteID) string {
	return "--gtest_filter=" + string(suite) + "*"
}

// OutputArg directs the JSON report to path
func OutputArg(path string) string {
	return "--gtest_output=json:" + path
}

// ListArg prints the available tests without running them
const ListArg = "--gtest_list_tests"
