package domain

// StructuredReport is the parsed JSON report the test binary writes for one suite
type StructuredReport struct {
	TotalFailures int
	TestGroups    []TestCaseEntry
}

// TestCaseEntry is one test case entry of a report
type TestCaseEntry struct {
	ClassName  string
	Name       string
	Failed     bool
	ValueParam *string
	Messages   []string // Failure messages, when the binary recorded them
}

// QualifiedName returns "ClassName.Name", with the parameter suffix for value-parameterized tests
func (e TestCaseEntry) QualifiedName() string {
	name := e.ClassName + "." + e.Name
	if e.ValueParam != nil {
		name += ", where GetParam() = " + *e.ValueParam
	}
	return name
}

// FailedCases returns the entries carrying a failure marker
func (r *StructuredReport) FailedCases() []TestCaseEntry {
	var failed []TestCaseEntry
	for _, entry := range r.TestGroups {
		if entry.Failed {
			failed = append(failed, entry)
		}
	}
	return failed
}

// CaseFailure is a failing test case together with the suite that ran it
type CaseFailure struct {
	Suite SuiteID
	Case  TestCaseEntry
}
