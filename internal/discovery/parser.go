package discovery

import (
	"strings"

	"gtp/internal/domain"
)

// Classify assigns the concurrency class of a suite from its name.
// Parameterized and typed suites ("Prefix/Suite", "Suite/0") contain '/'
// and run in parallel, everything else runs serially.
func Classify(suite domain.SuiteID) domain.ConcurrencyClass {
	if strings.Contains(string(suite), "/") {
		return domain.ParallelSafe
	}
	return domain.SerialOnly
}

// ParseSuiteList parses --gtest_list_tests output into classified suites.
// Suite headers start at column zero and hold the suite name before the first
// '.'; indented lines are test names and are skipped.
func ParseSuiteList(output string) domain.DiscoveryResult {
	var result domain.DiscoveryResult
	seen := make(map[domain.SuiteID]bool)

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		name, _, found := strings.Cut(line, ".")
		if !found || name == "" {
			continue
		}

		suite := domain.SuiteID(name)
		if seen[suite] {
			continue
		}
		seen[suite] = true

		if Classify(suite) == domain.ParallelSafe {
			result.Parallel = append(result.Parallel, suite)
		} else {
			result.Serial = append(result.Serial, suite)
		}
	}

	return result
}
