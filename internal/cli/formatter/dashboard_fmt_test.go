package formatter

import (
	"testing"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/progress"
	"github.com/stretchr/testify/assert"
)

func sampleDashboard() *app.DashboardResponse {
	return &app.DashboardResponse{
		Student: &domain.Student{ID: 1, Name: "Aoi", School: "Shibuya"},
		Overall: progress.Summary{
			PlannedHours:       25,
			AchievedHours:      21.5,
			ExternalHours:      1.5,
			AchievementRate:    80,
			CompletedItemCount: 1,
			PlannedItemCount:   2,
		},
		Subjects: []progress.SubjectSummary{
			{Subject: "English", Summary: progress.Summary{PlannedHours: 25, AchievedHours: 20, AchievementRate: 80, CompletedItemCount: 1, PlannedItemCount: 2}},
		},
		Items: []app.DashboardItem{
			{Subject: "English", Level: domain.LevelBasic, Name: "Target 1900", BaseHours: 10, AdjustedHours: 10, AchievedHours: 10, Planned: true, Done: true, CompletedUnits: 3, TotalUnits: 3},
			{Subject: "English", Level: domain.LevelTier2, Name: "Reading Drill", BaseHours: 12, AdjustedHours: 15, AchievedHours: 10, Planned: true, CompletedUnits: 2, TotalUnits: 3},
			{Subject: "English", Level: domain.LevelTier3, Name: "Old Book", BaseHours: 8, AdjustedHours: 8, TotalUnits: 1},
		},
	}
}

func TestFormatDashboard(t *testing.T) {
	out := stripANSI(FormatDashboard(sampleDashboard()))

	assert.Contains(t, out, "AOI (SHIBUYA)")
	assert.Contains(t, out, "25h")
	assert.Contains(t, out, "21.5h")
	assert.Contains(t, out, "(incl. 1.5h past exams)")
	assert.Contains(t, out, " 80%")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, "BY SUBJECT")
	assert.Contains(t, out, "Reading Drill")
	assert.Contains(t, out, "✔ Done")
	assert.Contains(t, out, "○ In progress")
	assert.Contains(t, out, "– Unplanned")
}

func TestFormatDashboard_SubjectViewHidesBreakdown(t *testing.T) {
	resp := sampleDashboard()
	resp.Subject = "English"
	resp.Overall.ExternalHours = 0
	resp.Overall.AchievedHours = 20

	out := stripANSI(FormatDashboard(resp))
	assert.Contains(t, out, "AOI (SHIBUYA) · ENGLISH")
	assert.NotContains(t, out, "BY SUBJECT")
	assert.NotContains(t, out, "past exams")
}

func TestFormatDashboard_Empty(t *testing.T) {
	out := stripANSI(FormatDashboard(&app.DashboardResponse{
		Student: &domain.Student{Name: "Ren"},
	}))
	assert.Contains(t, out, "No progress recorded yet.")
	assert.Contains(t, out, "0/0")
}
