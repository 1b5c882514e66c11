package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gtp/internal/domain"
	"gtp/internal/report"
)

// ErrReportNotFound is returned by Load when the report file does not exist
var ErrReportNotFound = errors.New("result file not found")

// EnsureDir creates the report directory if needed.
func (s *ReportStore) EnsureDir() error {
	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	return nil
}

// Path returns where the report for suite is written.
func (s *ReportStore) Path(suite domain.SuiteID) string {
	return filepath.Join(s.Dir(), report.FileName(suite))
}

// Remove deletes a stale report left by an earlier run, a missing file is not an error.
func (s *ReportStore) Remove(suite domain.SuiteID) error {
	if err := os.Remove(s.Path(suite)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove stale report: %w", err)
	}
	return nil
}

// Load reads and parses the report at path.
func (s *ReportStore) Load(path string) (*domain.StructuredReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, filepath.Base(path))
		}
		return nil, fmt.Errorf("read report: %w", err)
	}
	return report.Parse(data)
}

// LoadAll reads every report file in the report directory, sorted by suite.
// Files that fail to parse are returned with Err set.
func (s *ReportStore) LoadAll() ([]SuiteReport, error) {
	dir := s.Dir()
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("report dir: %w", err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "result_*.json"))
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	var reports []SuiteReport
	for _, path := range matches {
		suite, err := report.SuiteFromFileName(filepath.Base(path))
		if err != nil {
			continue
		}
		r, err := s.Load(path)
		reports = append(reports, SuiteReport{Suite: suite, Path: path, Report: r, Err: err})
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Suite < reports[j].Suite
	})
	return reports, nil
}
