package calendar

import (
	"time"

	"github.com/alexanderramin/juku/internal/domain"
)

// NearestMonth picks the month a calendar should open on:
// 1. The month of the earliest application deadline on or after today.
// 2. Otherwise the month of the earliest exam, announcement or procedure
//    date on or after today.
// 3. Otherwise today's month.
//
// Dates compare as calendar dates; the clock time of today is ignored.
func NearestMonth(records []domain.ApplicationRecord, today time.Time) YearMonth {
	day := domain.DateOf(today)

	var deadline, other *time.Time
	for i := range records {
		rec := &records[i]
		deadline = earliestUpcoming(deadline, rec.ApplicationDeadline, day)
		other = earliestUpcoming(other, rec.ExamDate, day)
		other = earliestUpcoming(other, rec.AnnouncementDate, day)
		other = earliestUpcoming(other, rec.ProcedureDeadline, day)
	}

	switch {
	case deadline != nil:
		return MonthOf(*deadline)
	case other != nil:
		return MonthOf(*other)
	default:
		return MonthOf(day)
	}
}

func earliestUpcoming(best, candidate *time.Time, today time.Time) *time.Time {
	if candidate == nil {
		return best
	}
	d := domain.DateOf(*candidate)
	if d.Before(today) {
		return best
	}
	if best == nil || d.Before(*best) {
		return &d
	}
	return best
}
