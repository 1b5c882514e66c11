package domain

import "time"

// DiagnosticKind classifies a non-fatal problem found while aggregating
type DiagnosticKind string

const (
	DiagnosticMissingReport   DiagnosticKind = "missing-report"
	DiagnosticEmptyReport     DiagnosticKind = "empty-report"
	DiagnosticMalformedReport DiagnosticKind = "malformed-report"
)

// Diagnostic is a warning about a failed suite whose case-level detail could not be recovered
type Diagnostic struct {
	Suite   SuiteID
	Kind    DiagnosticKind
	Message string
}

// RunSummary is the merged verdict of a run
type RunSummary struct {
	TotalSuites      int
	PassedSuites     int
	FailedSuites     []SuiteID
	TimedOutSuites   []SuiteID // Subset of FailedSuites
	TotalFailedCases int
	FailingCaseNames []string
	Diagnostics      []Diagnostic
	Duration         time.Duration
	Workers          int
}

// Failed reports whether the run failed, independent of recovered case detail
func (s RunSummary) Failed() bool {
	return len(s.FailedSuites) > 0
}

// TimedOut reports whether the suite is listed as timed out
func (s RunSummary) TimedOut(suite SuiteID) bool {
	for _, id := range s.TimedOutSuites {
		if id == suite {
			return true
		}
	}
	return false
}
