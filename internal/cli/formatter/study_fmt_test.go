package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatHomework(t *testing.T) {
	bookID := int64(3)
	out := stripANSI(FormatHomework([]*domain.Homework{
		{ID: 1, Subject: "English", TextbookName: "Target 1900", Book: domain.HomeworkBook{TextbookID: &bookID},
			Task: "p.1-4", TaskDate: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), Status: domain.HomeworkDone, Achievement: ptr(90)},
		{ID: 2, Subject: "English", TextbookName: "Target 1900", Book: domain.HomeworkBook{TextbookID: &bookID},
			Task: "p.5-8", TaskDate: time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC), Status: domain.HomeworkNotStarted},
		{ID: 3, Subject: "Math", TextbookName: "Handout", Book: domain.HomeworkBook{CustomName: "Handout"},
			Task: "Q1-10", TaskDate: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), Status: domain.HomeworkInProgress},
	}))

	assert.Contains(t, out, "English / Target 1900")
	assert.Contains(t, out, "Math / Handout (custom)")
	assert.Contains(t, out, "achievement: 90%")
	assert.Contains(t, out, "✔ done")
	assert.Contains(t, out, "◐ in progress")
	assert.Contains(t, out, "2025-11-04")

	assert.Contains(t, stripANSI(FormatHomework(nil)), "No homework")
}

func TestFormatMockExams(t *testing.T) {
	out := stripANSI(FormatMockExams([]*domain.MockExamResult{{
		ID: 7, ResultType: domain.MockOfficial, Name: "Zenkoku", Format: domain.MockFormatMark,
		Grade: "12", Round: "2", ExamDate: day(2025, 8, 24),
		Scores: map[string]int{"math1a": 64, "english_r": 82},
	}}))

	assert.Contains(t, out, "Zenkoku (grade 12, round 2)")
	assert.Contains(t, out, "official")
	assert.Contains(t, out, "2025-08-24")
	assert.Contains(t, out, "146")
	assert.Less(t, strings.Index(out, "math1a"), strings.Index(out, "english_r"), "format order")
}

func TestFormatEikenResults(t *testing.T) {
	out := stripANSI(FormatEikenResults([]*domain.EikenResult{
		{ID: 1, Grade: "pre2", CSEScore: ptr(1780), Result: "passed"},
		{ID: 2, Grade: "3"},
	}))
	assert.Contains(t, out, "Pre-2")
	assert.Contains(t, out, "1780")
	assert.Contains(t, out, "passed")
}

func TestFormatPresetApply(t *testing.T) {
	out := stripANSI(FormatPresetApply(&app.PresetApplyResult{
		Preset: &domain.BulkPreset{Name: "Starter"},
		Planned: []app.PlannedBook{
			{Level: domain.LevelBasic, Name: "Target 1900", Added: true},
			{Level: domain.LevelTier2, Name: "Scramble"},
		},
		Missing: []string{"Duo 3.0"},
	}))
	assert.Contains(t, out, "+ basic Target 1900")
	assert.Contains(t, out, "Scramble (already on record, units kept)")
	assert.Contains(t, out, "Duo 3.0 (no longer in the catalog)")
}
