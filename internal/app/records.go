package app

import "github.com/alexanderramin/juku/internal/domain"

// PlannedBook is one catalog book a preset put on a student's plan.
type PlannedBook struct {
	Level domain.Level
	Name  string
	// Added is false when the student already had a progress row for the
	// book; its units were kept.
	Added bool
}

type PresetApplyResult struct {
	Preset  *domain.BulkPreset
	Planned []PlannedBook
	// Missing lists preset books no longer in the catalog.
	Missing []string
}
