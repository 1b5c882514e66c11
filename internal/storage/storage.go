package storage

import (
	"gtp/internal/config"
	"gtp/internal/domain"
)

// Storage locates, loads and removes the per-suite report files
type Storage interface {
	EnsureDir() error
	Path(suite domain.SuiteID) string
	Remove(suite domain.SuiteID) error
	Load(path string) (*domain.StructuredReport, error)
	// LoadAll reads every report currently in the report directory.
	LoadAll() ([]SuiteReport, error)
}

// SuiteReport pairs a report found on disk with the suite that wrote it
type SuiteReport struct {
	Suite  domain.SuiteID
	Path   string
	Report *domain.StructuredReport
	Err    error // Parse error, Report is nil when set
}

// ReportStore keeps reports as JSON files in the configured report directory.
type ReportStore struct {
	cfg *config.Config
}

// NewReportStore returns a Storage that reads/writes the config's report directory.
func NewReportStore(cfg *config.Config) *ReportStore {
	return &ReportStore{cfg: cfg}
}

// Dir returns the report directory
func (s *ReportStore) Dir() string {
	return s.cfg.GetReportDir()
}
