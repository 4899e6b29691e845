package app

import (
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/progress"
)

type DashboardRequest struct {
	StudentID int64        `name:"student_id" validate:"gt=0"`
	Viewer    *domain.User `name:"viewer" validate:"required"`
	// Subject narrows the dashboard to one subject. Past-exam hours are
	// left out of a single-subject view.
	Subject string `name:"subject"`
}

// DashboardItem is one progress row with its student-adjusted duration.
type DashboardItem struct {
	Subject        string
	Level          domain.Level
	Name           string
	BaseHours      float64
	AdjustedHours  float64
	AchievedHours  float64
	Planned        bool
	Done           bool
	CompletedUnits int
	TotalUnits     int
}

type DashboardResponse struct {
	Student  *domain.Student
	Subject  string
	Overall  progress.Summary
	Subjects []progress.SubjectSummary
	Items    []DashboardItem
}
