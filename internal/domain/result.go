package domain

import "time"

// FailureReason explains why a child process did not succeed
type FailureReason int

const (
	ReasonNone FailureReason = iota
	// ReasonInvocation means the process could not be started
	ReasonInvocation
	// ReasonNonZeroExit means the process ran and exited with a non-zero status
	ReasonNonZeroExit
	// ReasonTimeout means the per-call deadline expired and the process was killed
	ReasonTimeout
	// ReasonCanceled means the run was canceled before or while the process ran
	ReasonCanceled
)

func (r FailureReason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonInvocation:
		return "invocation error"
	case ReasonNonZeroExit:
		return "non-zero exit"
	case ReasonTimeout:
		return "timed out"
	case ReasonCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// ProcessResult is the result of one test binary invocation
type ProcessResult struct {
	ExitCode int           // -1 when the process did not exit normally
	Stdout   string        // Captured standard output
	Stderr   string        // Captured standard error
	Duration time.Duration // Wall-clock time of the call
	Reason   FailureReason
	Err      error // Underlying error, nil on success
}

// OK reports whether the process ran and exited with status zero
func (r ProcessResult) OK() bool {
	return r.Reason == ReasonNone
}

// OutcomeStatus is the final state of one suite execution
type OutcomeStatus int

const (
	StatusPassed OutcomeStatus = iota
	StatusFailed
	StatusTimedOut
)

func (s OutcomeStatus) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusTimedOut:
		return "timed out"
	default:
		return "unknown"
	}
}

// ExecutionOutcome represents the result of executing a single suite
type ExecutionOutcome struct {
	Suite      SuiteID
	Class      ConcurrencyClass
	Status     OutcomeStatus
	ReportPath string // Empty when no report could be produced
	Process    ProcessResult
}

// Succeeded reports whether the suite passed
func (o ExecutionOutcome) Succeeded() bool {
	return o.Status == StatusPassed
}
