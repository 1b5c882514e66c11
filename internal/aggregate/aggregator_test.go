package aggregate

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"gtp/internal/config"
	"gtp/internal/domain"
	"gtp/internal/storage"
)

func newTestAggregator(t *testing.T) (*Aggregator, *storage.ReportStore, *test.Hook) {
	t.Helper()
	cfg := config.New()
	cfg.OutputDir = t.TempDir()
	store := storage.NewReportStore(cfg)
	log, hook := test.NewNullLogger()
	return NewAggregator(store, log), store, hook
}

func writeReport(t *testing.T, store *storage.ReportStore, suite domain.SuiteID, data string) string {
	t.Helper()
	path := store.Path(suite)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func failed(suite domain.SuiteID, path string) domain.ExecutionOutcome {
	return domain.ExecutionOutcome{
		Suite:      suite,
		Status:     domain.StatusFailed,
		ReportPath: path,
		Process:    domain.ProcessResult{ExitCode: 1, Reason: domain.ReasonNonZeroExit},
	}
}

func passed(suite domain.SuiteID) domain.ExecutionOutcome {
	return domain.ExecutionOutcome{Suite: suite, Status: domain.StatusPassed}
}

func TestAggregator_Aggregate(t *testing.T) {
	t.Run("failing case from report", func(t *testing.T) {
		agg, store, _ := newTestAggregator(t)
		path := writeReport(t, store, "Basic",
			`{"failures":1,"testsuites":[{"testsuite":[{"classname":"Basic","name":"T1","failures":"1"}]}]}`)

		summary := agg.Aggregate([]domain.ExecutionOutcome{failed("Basic", path), passed("Other")})

		require.True(t, summary.Failed())
		require.Equal(t, 2, summary.TotalSuites)
		require.Equal(t, 1, summary.PassedSuites)
		require.Equal(t, []domain.SuiteID{"Basic"}, summary.FailedSuites)
		require.Equal(t, 1, summary.TotalFailedCases)
		require.Equal(t, []string{"Basic.T1"}, summary.FailingCaseNames)
		require.Empty(t, summary.Diagnostics)
	})

	t.Run("value parameter suffix", func(t *testing.T) {
		agg, store, _ := newTestAggregator(t)
		path := writeReport(t, store, "Values/ParamTest", `{"failures":1,"testsuites":[{"testsuite":[
  {"classname":"Values/ParamTest","name":"Check/0","value_param":"1"},
  {"classname":"Values/ParamTest","name":"Check/1","value_param":"2","failures":[{"failure":"boom","type":""}]}
]}]}`)

		summary := agg.Aggregate([]domain.ExecutionOutcome{failed("Values/ParamTest", path)})

		require.Equal(t, []string{"Values/ParamTest.Check/1, where GetParam() = 2"}, summary.FailingCaseNames)
	})

	t.Run("all passed", func(t *testing.T) {
		agg, _, _ := newTestAggregator(t)

		summary := agg.Aggregate([]domain.ExecutionOutcome{passed("A"), passed("B/1")})

		require.False(t, summary.Failed())
		require.Equal(t, 2, summary.PassedSuites)
		require.Zero(t, summary.TotalFailedCases)
	})

	t.Run("missing report still fails the suite", func(t *testing.T) {
		agg, store, hook := newTestAggregator(t)

		summary := agg.Aggregate([]domain.ExecutionOutcome{failed("Crashed", store.Path("Crashed"))})

		require.True(t, summary.Failed())
		require.Equal(t, []domain.SuiteID{"Crashed"}, summary.FailedSuites)
		require.Zero(t, summary.TotalFailedCases)
		require.Len(t, summary.Diagnostics, 1)
		require.Equal(t, domain.DiagnosticMissingReport, summary.Diagnostics[0].Kind)
		require.Contains(t, summary.Diagnostics[0].Message, "result file not found")
		require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("invocation failure has no report path", func(t *testing.T) {
		agg, _, _ := newTestAggregator(t)
		outcome := domain.ExecutionOutcome{
			Suite:   "Basic",
			Status:  domain.StatusFailed,
			Process: domain.ProcessResult{ExitCode: -1, Reason: domain.ReasonInvocation},
		}

		summary := agg.Aggregate([]domain.ExecutionOutcome{outcome})

		require.Equal(t, []domain.SuiteID{"Basic"}, summary.FailedSuites)
		require.Equal(t, domain.DiagnosticMissingReport, summary.Diagnostics[0].Kind)
	})

	t.Run("empty report is skipped", func(t *testing.T) {
		agg, store, _ := newTestAggregator(t)
		path := writeReport(t, store, "Empty", `{"failures":3,"testsuites":[]}`)

		summary := agg.Aggregate([]domain.ExecutionOutcome{failed("Empty", path)})

		require.Zero(t, summary.TotalFailedCases)
		require.Equal(t, domain.DiagnosticEmptyReport, summary.Diagnostics[0].Kind)
	})

	t.Run("malformed report degrades to a diagnostic", func(t *testing.T) {
		agg, store, _ := newTestAggregator(t)
		bad := writeReport(t, store, "Bad", `{"failures":"lots"}`)
		good := writeReport(t, store, "Good",
			`{"failures":2,"testsuites":[{"testsuite":[{"classname":"Good","name":"a","failures":"1"},{"classname":"Good","name":"b","failures":"1"}]}]}`)

		summary := agg.Aggregate([]domain.ExecutionOutcome{failed("Bad", bad), failed("Good", good)})

		require.Equal(t, []domain.SuiteID{"Bad", "Good"}, summary.FailedSuites)
		require.Equal(t, 2, summary.TotalFailedCases)
		require.Equal(t, []string{"Good.a", "Good.b"}, summary.FailingCaseNames)
		require.Len(t, summary.Diagnostics, 1)
		require.Equal(t, domain.DiagnosticMalformedReport, summary.Diagnostics[0].Kind)
	})

	t.Run("timed out suites are failed and listed", func(t *testing.T) {
		agg, store, _ := newTestAggregator(t)
		outcome := domain.ExecutionOutcome{
			Suite:      "Hung",
			Status:     domain.StatusTimedOut,
			ReportPath: store.Path("Hung"),
			Process:    domain.ProcessResult{ExitCode: -1, Reason: domain.ReasonTimeout},
		}

		summary := agg.Aggregate([]domain.ExecutionOutcome{outcome, passed("Fine")})

		require.True(t, summary.Failed())
		require.Equal(t, []domain.SuiteID{"Hung"}, summary.FailedSuites)
		require.Equal(t, []domain.SuiteID{"Hung"}, summary.TimedOutSuites)
		require.True(t, summary.TimedOut("Hung"))
	})

	t.Run("each failed suite listed once", func(t *testing.T) {
		agg, store, _ := newTestAggregator(t)
		outcomes := []domain.ExecutionOutcome{
			failed("A", store.Path("A")),
			passed("B"),
			failed("C/1", store.Path("C/1")),
		}

		summary := agg.Aggregate(outcomes)

		require.Equal(t, []domain.SuiteID{"A", "C/1"}, summary.FailedSuites)
	})
}

func TestAggregator_Failures(t *testing.T) {
	agg, store, _ := newTestAggregator(t)
	writeReport(t, store, "Basic",
		`{"failures":1,"testsuites":[{"testsuite":[{"classname":"Basic","name":"T1","failures":[{"failure":"expected true"}]},{"classname":"Basic","name":"T2"}]}]}`)
	writeReport(t, store, "Clean", `{"failures":0,"testsuites":[{"testsuite":[{"classname":"Clean","name":"T1"}]}]}`)
	writeReport(t, store, "Broken", `[]`)

	failures, diagnostics, err := agg.Failures()

	require.NoError(t, err)
	require.Len(t, failures, 1)
	require.Equal(t, domain.SuiteID("Basic"), failures[0].Suite)
	require.Equal(t, "Basic.T1", failures[0].Case.QualifiedName())
	require.Equal(t, []string{"expected true"}, failures[0].Case.Messages)
	require.Len(t, diagnostics, 1)
	require.Equal(t, domain.SuiteID("Broken"), diagnostics[0].Suite)
}
