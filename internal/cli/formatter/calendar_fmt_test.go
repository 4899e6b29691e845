package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/juku/internal/calendar"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestFormatMonth(t *testing.T) {
	records := []domain.ApplicationRecord{
		{ID: 1, University: "Waseda", Faculty: "Commerce", ApplicationDeadline: day(2026, 2, 12), ExamDate: day(2026, 2, 12)},
		{ID: 2, University: "Keio", Faculty: "Law", AnnouncementDate: day(2026, 2, 20)},
	}
	ym := calendar.YearMonth{Year: 2026, Month: time.February}
	m := calendar.BuildMonth(calendar.SortRecords(records), ym)

	out := stripANSI(FormatMonth(m, time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)))

	assert.Contains(t, out, "FEBRUARY 2026")
	assert.Contains(t, out, "Su")
	assert.Contains(t, out, "28")
	assert.NotContains(t, out, "29")
	assert.Contains(t, out, "Waseda Commerce")
	assert.Contains(t, out, "E+")
	assert.Contains(t, out, "E/D")
	assert.Contains(t, out, "exam, application deadline")
	assert.Contains(t, out, "Feb 20 Fri")
	assert.Contains(t, out, "results announcement")
	assert.Contains(t, out, "P procedure deadline")
}

func TestFormatMonth_Empty(t *testing.T) {
	m := calendar.BuildMonth(nil, calendar.YearMonth{Year: 2026, Month: time.March})
	out := stripANSI(FormatMonth(m, time.Now()))
	assert.Contains(t, out, "No application dates in 2026-03.")
}

func TestFormatUndated(t *testing.T) {
	assert.Equal(t, "", FormatUndated(nil))
	out := stripANSI(FormatUndated([]domain.ApplicationRecord{{University: "Sophia"}}))
	assert.Equal(t, "Undated: Sophia\n", out)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
