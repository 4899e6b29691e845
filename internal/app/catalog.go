package app

import (
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/importer"
)

// LevelGroup is the catalog books of one level.
type LevelGroup struct {
	Level domain.Level
	Books []*domain.MasterTextbook
}

// SubjectCatalog groups one subject's books by level, known levels first in
// display order, then unknown levels lexically.
type SubjectCatalog struct {
	Subject string
	Levels  []LevelGroup
}

type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        []importer.Issue
	Warnings       []importer.Issue
}

type StatisticsRequest struct {
	School string
	Grade  string
}

// SubjectLevelStats is the number of distinct students that finished an
// item of the subject at each statistics level.
type SubjectLevelStats struct {
	Subject string
	Counts  map[domain.Level]int
}

type StatisticsResponse struct {
	Levels   []domain.Level
	Subjects []SubjectLevelStats
}
