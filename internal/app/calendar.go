package app

import (
	"time"

	"github.com/alexanderramin/juku/internal/calendar"
	"github.com/alexanderramin/juku/internal/domain"
)

type CalendarRequest struct {
	StudentID int64        `name:"student_id" validate:"gt=0"`
	Viewer    *domain.User `name:"viewer" validate:"required"`
	// Month defaults to the nearest month with an upcoming date.
	Month *calendar.YearMonth
	// Today defaults to the current local calendar date.
	Today *time.Time
}

type CalendarResponse struct {
	Student *domain.Student
	Month   calendar.Month
	// Defaulted is true when Month was chosen from the upcoming dates.
	Defaulted bool
	// Undated lists records with no date at all; they never appear in a grid.
	Undated []domain.ApplicationRecord
}

type CalendarRangeRequest struct {
	StudentID int64        `name:"student_id" validate:"gt=0"`
	Viewer    *domain.User `name:"viewer" validate:"required"`
	From      calendar.YearMonth
	To        calendar.YearMonth
}

type CalendarRangeResponse struct {
	Student *domain.Student
	Months  []calendar.Month
}
