package domain

// SuiteID identifies a test suite exposed by the test binary
type SuiteID string

// ConcurrencyClass tells the scheduler which lane a suite runs in
type ConcurrencyClass int

const (
	// SerialOnly suites share process-wide fixture state and run one at a time
	SerialOnly ConcurrencyClass = iota
	// ParallelSafe suites are parameterized or typed groups whose instances are independent
	ParallelSafe
)

func (c ConcurrencyClass) String() string {
	switch c {
	case ParallelSafe:
		return "parallel"
	case SerialOnly:
		return "serial"
	default:
		return "unknown"
	}
}

// DiscoveryResult holds the discovered suites split by concurrency class.
// Both lists keep first-seen order and a suite appears in exactly one of them.
type DiscoveryResult struct {
	Parallel []SuiteID
	Serial   []SuiteID
}

// Total returns the number of discovered suites
func (d DiscoveryResult) Total() int {
	return len(d.Parallel) + len(d.Serial)
}

// All returns every suite, parallel ones first
func (d DiscoveryResult) All() []SuiteID {
	all := make([]SuiteID, 0, d.Total())
	all = append(all, d.Parallel...)
	return append(all, d.Serial...)
}

// Class returns the class the suite was assigned at discovery, and false if the suite is unknown
func (d DiscoveryResult) Class(suite SuiteID) (ConcurrencyClass, bool) {
	for _, s := range d.Parallel {
		if s == suite {
			return ParallelSafe, true
		}
	}
	for _, s := range d.Serial {
		if s == suite {
			return SerialOnly, true
		}
	}
	return SerialOnly, false
}
