package discovery

import (
	"testing"

	"gtp/internal/domain"
)

func TestFilter_FilterSuites(t *testing.T) {
	filter := NewFilter()
	discovered := domain.DiscoveryResult{
		Parallel: []domain.SuiteID{"TypeParamTest/Foo", "Values/ParamTest", "TypedTest/0"},
		Serial:   []domain.SuiteID{"BasicTest", "ProtocolTest", "UtilsTest"},
	}

	tests := []struct {
		name     string
		pattern  string
		parallel int
		serial   int
	}{
		{name: "empty pattern returns all", pattern: "", parallel: 3, serial: 3},
		{name: "prefix wildcard", pattern: "Basic*", parallel: 0, serial: 1},
		{name: "wildcard across slash", pattern: "*Param*", parallel: 2, serial: 0},
		{name: "simple contains match", pattern: "Test", parallel: 3, serial: 3},
		{name: "suffix wildcard", pattern: "*Test", parallel: 1, serial: 3},
		{name: "single character wildcard", pattern: "TypedTest/?", parallel: 1, serial: 0},
		{name: "no matches", pattern: "*NonExistent*", parallel: 0, serial: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterSuites(discovered, tt.pattern)
			if len(result.Parallel) != tt.parallel || len(result.Serial) != tt.serial {
				t.Errorf("expected %d parallel / %d serial, got %v / %v", tt.parallel, tt.serial, result.Parallel, result.Serial)
			}
		})
	}
}

func TestFilter_FilterSuites_KeepsOrder(t *testing.T) {
	filter := NewFilter()
	discovered := domain.DiscoveryResult{Serial: []domain.SuiteID{"CTest", "ATest", "BTest"}}

	result := filter.FilterSuites(discovered, "*Test")
	for i, suite := range discovered.Serial {
		if result.Serial[i] != suite {
			t.Errorf("expected %s at %d, got %s", suite, i, result.Serial[i])
		}
	}
}
