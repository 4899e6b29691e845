package calendar

import (
	"fmt"
	"time"
)

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t, as seen in t's own location.
func MonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", s, err)
	}
	return MonthOf(t), nil
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// First returns the first day of the month at UTC midnight.
func (ym YearMonth) First() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the month (proleptic Gregorian).
func (ym YearMonth) Days() int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (ym YearMonth) Next() YearMonth {
	return MonthOf(ym.First().AddDate(0, 1, 0))
}

func (ym YearMonth) Prev() YearMonth {
	return MonthOf(ym.First().AddDate(0, -1, 0))
}

// MonthsUntil counts the months from ym to other, negative when other
// comes first. A month to itself is 0.
func (ym YearMonth) MonthsUntil(other YearMonth) int {
	return (other.Year-ym.Year)*12 + int(other.Month) - int(ym.Month)
}

// Before reports whether ym is earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// Contains reports whether the calendar date of t falls inside the month.
func (ym YearMonth) Contains(t time.Time) bool {
	return t.Year() == ym.Year && t.Month() == ym.Month
}
