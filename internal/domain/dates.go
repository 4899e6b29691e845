package domain

import (
	"strings"
	"time"
)

// DateLayout is the storage and input format for calendar dates.
const DateLayout = "2006-01-02"

// DateOf truncates t to a calendar date at UTC midnight, keeping t's
// year, month and day as seen in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}

// ParseOptionalDate parses s, returning nil for blank input.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatOptionalDate formats d, or returns "" when d is nil.
func FormatOptionalDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}
