package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"gtp/internal/config"
	"gtp/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to the terminal
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{
		config: cfg,
		out:    color.Output,
	}
}

// SetOutput redirects the formatter, mainly for tests
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// PrintDiscovery prints the classified suites as two trees
func (f *Formatter) PrintDiscovery(result domain.DiscoveryResult) {
	if result.Total() == 0 {
		yellow.Fprintln(f.out, "No test suites found")
		return
	}

	green.Fprintf(f.out, "Found %d parallel test suite(s):\n", len(result.Parallel))
	f.printTree(result.Parallel)
	fmt.Fprintln(f.out)
	green.Fprintf(f.out, "Found %d serial test suite(s):\n", len(result.Serial))
	f.printTree(result.Serial)
}

func (f *Formatter) printTree(suites []domain.SuiteID) {
	for i, suite := range suites {
		if i == len(suites)-1 {
			cyan.Fprintf(f.out, "└── %s\n", suite)
		} else {
			cyan.Fprintf(f.out, "├── %s\n", suite)
		}
	}
}

// PrintSummary prints the statistics of a run followed by every failing case
func (f *Formatter) PrintSummary(summary domain.RunSummary) {
	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Test Suite Statistics                      ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.row("Total Suites", white, summary.TotalSuites)
	f.separator()
	f.row("Passed Suites", green, summary.PassedSuites)
	f.separator()
	f.row("Failed Suites", red, len(summary.FailedSuites))
	f.separator()
	f.row("Timed Out Suites", red, len(summary.TimedOutSuites))
	f.separator()
	f.row("Failed Test Cases", red, summary.TotalFailedCases)
	f.separator()
	f.row("Duration", white, fmt.Sprintf("%.2fs", summary.Duration.Seconds()))
	f.separator()
	f.row("Workers", white, summary.Workers)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")
	fmt.Fprintln(f.out)

	if !summary.Failed() {
		green.Fprintln(f.out, "✓ All test suites passed")
		return
	}

	fmt.Fprintln(f.out, "=== Test Summary ===")
	fmt.Fprintf(f.out, "Total suites: %d, Passed: %d, Failed: %d\n",
		summary.TotalSuites, summary.PassedSuites, len(summary.FailedSuites))
	fmt.Fprintln(f.out, "Failed test suites:")
	for _, suite := range summary.FailedSuites {
		if summary.TimedOut(suite) {
			red.Fprintf(f.out, "  - %s (timed out after %s)\n", suite, f.config.SuiteTimeout.Round(time.Second))
			continue
		}
		red.Fprintf(f.out, "  - %s\n", suite)
	}

	for _, d := range summary.Diagnostics {
		yellow.Fprintf(f.out, "warning: %s: %s\n", d.Suite, d.Message)
	}
	for _, name := range summary.FailingCaseNames {
		red.Fprintf(f.out, "[ FAILED ] %s\n", name)
	}

	fmt.Fprintln(f.out)
	red.Fprintf(f.out, "Test failed: %d\n", summary.TotalFailedCases)
}

func (f *Formatter) row(label string, c *color.Color, value any) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27v", value)
	fmt.Fprintln(f.out, " │")
}

func (f *Formatter) separator() {
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
}

// PrintFailures lists failing cases read back from the report directory
func (f *Formatter) PrintFailures(failures []domain.CaseFailure, diagnostics []domain.Diagnostic) {
	for _, d := range diagnostics {
		yellow.Fprintf(f.out, "warning: %s: %s\n", d.Suite, d.Message)
	}
	if len(failures) == 0 {
		green.Fprintln(f.out, "✓ No test failures found!")
		return
	}

	red.Fprintf(f.out, "%d failing test case(s):\n", len(failures))
	for i, failure := range failures {
		red.Fprintf(f.out, "[ FAILED ] %s\n", failure.Case.QualifiedName())
		for _, msg := range failure.Case.Messages {
			fmt.Fprintf(f.out, "%s\n", indent(msg))
		}
		if i < len(failures)-1 && len(failure.Case.Messages) > 0 {
			fmt.Fprintln(f.out)
		}
	}
}
