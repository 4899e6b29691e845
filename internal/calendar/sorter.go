package calendar

import (
	"sort"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
)

// SortRecords returns a sorted copy of records using the canonical grid order:
// 1. Application deadline: earliest first (nil last)
// 2. Exam date: earliest first (nil last)
// 3. University, faculty, department: lexical ascending
// 4. ID ascending
func SortRecords(records []domain.ApplicationRecord) []domain.ApplicationRecord {
	sorted := make([]domain.ApplicationRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if c := compareOptionalDate(a.ApplicationDeadline, b.ApplicationDeadline); c != 0 {
			return c < 0
		}
		if c := compareOptionalDate(a.ExamDate, b.ExamDate); c != 0 {
			return c < 0
		}
		if a.University != b.University {
			return a.University < b.University
		}
		if a.Faculty != b.Faculty {
			return a.Faculty < b.Faculty
		}
		if a.Department != b.Department {
			return a.Department < b.Department
		}
		return a.ID < b.ID
	})
	return sorted
}

// compareOptionalDate orders by calendar date with nil after any date.
func compareOptionalDate(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	da, db := domain.DateOf(*a), domain.DateOf(*b)
	switch {
	case da.Before(db):
		return -1
	case db.Before(da):
		return 1
	default:
		return 0
	}
}
