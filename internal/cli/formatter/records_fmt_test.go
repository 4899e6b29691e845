package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/importer"
	"github.com/stretchr/testify/assert"
)

func TestFormatApplications(t *testing.T) {
	today := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	out := stripANSI(FormatApplications([]domain.ApplicationRecord{
		{ID: 4, University: "Waseda", Faculty: "Commerce", ExamDate: day(2026, 2, 12), Result: domain.ResultPassed},
		{ID: 5, University: "Keio"},
	}, today))

	assert.Contains(t, out, "#4")
	assert.Contains(t, out, "Waseda Commerce")
	assert.Contains(t, out, "2026-02-12 In 11d")
	assert.Contains(t, out, "✔ Passed")
	assert.Contains(t, out, "○ Pending")

	assert.Contains(t, stripANSI(FormatApplications(nil, today)), "No applications")
}

func TestFormatPastExams(t *testing.T) {
	out := stripANSI(FormatPastExams([]*domain.PastExamResult{{
		ID:              9,
		Date:            time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		University:      "Waseda",
		Year:            2024,
		Subject:         "English",
		TimeRequiredMin: ptr(90),
		CorrectAnswers:  ptr(30),
		TotalQuestions:  ptr(40),
	}}, 1.5))

	assert.Contains(t, out, "2025-12-01")
	assert.Contains(t, out, "1h 30m / --")
	assert.Contains(t, out, "30/40 (75%)")
	assert.Contains(t, out, "Total practice time: 1.5h")
}

func TestFormatProgressList(t *testing.T) {
	out := stripANSI(FormatProgressList([]domain.ProgressItem{
		{Subject: "Math", Level: domain.LevelTier2, ItemName: "Focus Gold", BaseDuration: 40, IsPlanned: true, CompletedUnits: 2, TotalUnits: 5},
	}))
	assert.Contains(t, out, "Focus Gold")
	assert.Contains(t, out, "40h")
	assert.Contains(t, out, "2/5")
}

func TestFormatImportResult(t *testing.T) {
	out := stripANSI(FormatImportResult(&app.ImportResult{
		TotalProcessed: 5,
		Created:        3,
		Updated:        1,
		Skipped:        []importer.Issue{{Line: 4, Reason: "missing columns"}},
		Warnings:       []importer.Issue{{Line: 2, Reason: "duration \"abc\" is not a number; using 0"}},
	}))
	assert.Contains(t, out, "processed 5")
	assert.Contains(t, out, "created 3")
	assert.Contains(t, out, "skipped 1")
	assert.Contains(t, out, "line 4: missing columns")
	assert.Contains(t, out, "Warnings")
}
