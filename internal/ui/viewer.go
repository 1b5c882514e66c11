package ui

import "gtp/internal/domain"

// Viewer displays failing test cases
type Viewer interface {
	View(failures []domain.CaseFailure) error
}
