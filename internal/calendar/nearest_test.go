package calendar

import (
	"testing"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/stretchr/testify/assert"
)

var today = time.Date(2026, time.January, 25, 15, 30, 0, 0, time.UTC)

func plusDays(n int) *time.Time {
	d := domain.DateOf(today).AddDate(0, 0, n)
	return &d
}

func TestNearestMonth_DeadlineBeatsNearerExam(t *testing.T) {
	records := []domain.ApplicationRecord{
		record(1, "Keio", withDeadline(plusDays(10))),
		record(2, "Waseda", withExam(plusDays(2))),
	}
	// today+10 = 2026-02-04, today+2 = 2026-01-27
	assert.Equal(t, YearMonth{2026, time.February}, NearestMonth(records, today))
}

func TestNearestMonth_FallsBackToOtherDates(t *testing.T) {
	records := []domain.ApplicationRecord{
		record(1, "Keio", withDeadline(plusDays(-30)), withAnnouncement(plusDays(40))),
		record(2, "Waseda", withProcedure(plusDays(70)), withExam(plusDays(-1))),
	}
	// today+40 = 2026-03-06
	assert.Equal(t, YearMonth{2026, time.March}, NearestMonth(records, today))
}

func TestNearestMonth_AllPast(t *testing.T) {
	records := []domain.ApplicationRecord{
		record(1, "Keio", withDeadline(plusDays(-60)), withExam(plusDays(-40))),
		record(2, "Meiji", withAnnouncement(plusDays(-1)), withProcedure(plusDays(-1))),
	}
	assert.Equal(t, YearMonth{2026, time.January}, NearestMonth(records, today))
}

func TestNearestMonth_EmptyAndDateless(t *testing.T) {
	assert.Equal(t, YearMonth{2026, time.January}, NearestMonth(nil, today))
	assert.Equal(t, YearMonth{2026, time.January}, NearestMonth([]domain.ApplicationRecord{record(1, "Keio")}, today))
}

func TestNearestMonth_TodayCountsAsUpcoming(t *testing.T) {
	// The clock time of today is later than the midnight-stored deadline.
	records := []domain.ApplicationRecord{
		record(1, "Keio", withDeadline(plusDays(0)), withExam(plusDays(1))),
		record(2, "Meiji", withDeadline(plusDays(45))),
	}
	assert.Equal(t, YearMonth{2026, time.January}, NearestMonth(records, today))
}

func TestNearestMonth_PicksEarliestDeadline(t *testing.T) {
	records := []domain.ApplicationRecord{
		record(1, "Keio", withDeadline(plusDays(80))),
		record(2, "Meiji", withDeadline(plusDays(20))),
		record(3, "Chuo", withDeadline(plusDays(50))),
	}
	// today+20 = 2026-02-14
	assert.Equal(t, YearMonth{2026, time.February}, NearestMonth(records, today))
}
