// Package aggregate merges per-suite outcomes into the verdict of a run.
package aggregate

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"gtp/internal/domain"
	"gtp/internal/storage"
)

// Aggregator builds a RunSummary from execution outcomes
type Aggregator struct {
	storage storage.Storage
	log     logrus.FieldLogger
}

// NewAggregator creates a new Aggregator
func NewAggregator(st storage.Storage, log logrus.FieldLogger) *Aggregator {
	return &Aggregator{
		storage: st,
		log:     log.WithField("component", "aggregator"),
	}
}

// Aggregate partitions outcomes and collects case-level detail for failed suites.
// A failed suite always counts as failed, whether or not its report can be read.
func (a *Aggregator) Aggregate(outcomes []domain.ExecutionOutcome) domain.RunSummary {
	summary := domain.RunSummary{TotalSuites: len(outcomes)}

	for _, outcome := range outcomes {
		if outcome.Succeeded() {
			summary.PassedSuites++
			continue
		}

		summary.FailedSuites = append(summary.FailedSuites, outcome.Suite)
		if outcome.Status == domain.StatusTimedOut {
			summary.TimedOutSuites = append(summary.TimedOutSuites, outcome.Suite)
		}

		a.collectCases(&summary, outcome)
	}

	return summary
}

func (a *Aggregator) collectCases(summary *domain.RunSummary, outcome domain.ExecutionOutcome) {
	if outcome.ReportPath == "" {
		a.diagnose(summary, outcome.Suite, domain.DiagnosticMissingReport,
			fmt.Sprintf("result file not found: %s", outcome.Process.Reason))
		return
	}

	report, err := a.storage.Load(outcome.ReportPath)
	switch {
	case errors.Is(err, storage.ErrReportNotFound):
		a.diagnose(summary, outcome.Suite, domain.DiagnosticMissingReport, err.Error())
		return
	case err != nil:
		a.diagnose(summary, outcome.Suite, domain.DiagnosticMalformedReport, err.Error())
		return
	case len(report.TestGroups) == 0:
		a.diagnose(summary, outcome.Suite, domain.DiagnosticEmptyReport, "report has no test cases")
		return
	}

	summary.TotalFailedCases += report.TotalFailures
	for _, entry := range report.FailedCases() {
		summary.FailingCaseNames = append(summary.FailingCaseNames, entry.QualifiedName())
	}
}

func (a *Aggregator) diagnose(summary *domain.RunSummary, suite domain.SuiteID, kind domain.DiagnosticKind, message string) {
	summary.Diagnostics = append(summary.Diagnostics, domain.Diagnostic{
		Suite:   suite,
		Kind:    kind,
		Message: message,
	})
	a.log.WithFields(logrus.Fields{
		"suite": suite,
		"kind":  kind,
	}).Warn(message)
}

// Failures loads the failing cases recorded in every report on disk, for browsing after a run
func (a *Aggregator) Failures() ([]domain.CaseFailure, []domain.Diagnostic, error) {
	reports, err := a.storage.LoadAll()
	if err != nil {
		return nil, nil, err
	}

	var failures []domain.CaseFailure
	var diagnostics []domain.Diagnostic
	for _, r := range reports {
		if r.Err != nil {
			diagnostics = append(diagnostics, domain.Diagnostic{
				Suite:   r.Suite,
				Kind:    domain.DiagnosticMalformedReport,
				Message: r.Err.Error(),
			})
			continue
		}
		for _, entry := range r.Report.FailedCases() {
			failures = append(failures, domain.CaseFailure{Suite: r.Suite, Case: entry})
		}
	}
	return failures, diagnostics, nil
}
