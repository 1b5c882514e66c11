package discovery

import (
	"path"
	"strings"

	"gtp/internal/domain"
)

// Filter narrows a discovery result by suite name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterSuites keeps the suites matching pattern, preserving class and order.
// Supports patterns like "Basic*" or "*Param*"; a pattern without wildcards
// matches suites containing it.
func (f *Filter) FilterSuites(result domain.DiscoveryResult, pattern string) domain.DiscoveryResult {
	if pattern == "" {
		return result
	}
	return domain.DiscoveryResult{
		Parallel: f.filter(result.Parallel, pattern),
		Serial:   f.filter(result.Serial, pattern),
	}
}

func (f *Filter) filter(suites []domain.SuiteID, pattern string) []domain.SuiteID {
	var filtered []domain.SuiteID
	for _, suite := range suites {
		if f.matches(string(suite), pattern) {
			filtered = append(filtered, suite)
		}
	}
	return filtered
}

func (f *Filter) matches(name, pattern string) bool {
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// path.Match stops '*' at '/', fall back to ordered substring matching for typed suites
	if matched, err := path.Match(pattern, name); err == nil && matched {
		return true
	}
	if strings.Contains(pattern, "?") {
		return false
	}

	parts := strings.Split(pattern, "*")
	rest := name
	for i, part := range parts {
		if part == "" {
			continue
		}
		idx := strings.Index(rest, part)
		if idx < 0 || (i == 0 && idx != 0) {
			return false
		}
		rest = rest[idx+len(part):]
	}
	if last := parts[len(parts)-1]; last != "" && !strings.HasSuffix(name, last) {
		return false
	}
	return true
}
