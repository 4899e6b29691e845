package calendar

import (
	"testing"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ids(records []domain.ApplicationRecord) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestSortRecords_CanonicalOrder(t *testing.T) {
	records := []domain.ApplicationRecord{
		record(1, "Keio"), // no dates: last
		record(2, "Keio", withExam(date(2026, time.February, 10))),
		record(3, "Waseda", withDeadline(date(2026, time.January, 20)), withExam(date(2026, time.February, 15))),
		record(4, "Meiji", withDeadline(date(2026, time.January, 20)), withExam(date(2026, time.February, 12))),
		record(5, "Chuo", withDeadline(date(2026, time.January, 5))),
		record(6, "Aoyama", withDeadline(date(2026, time.January, 20)), withExam(date(2026, time.February, 12))),
		record(7, "Hosei", withExam(date(2026, time.February, 10))),
	}

	sorted := SortRecords(records)

	// 1. deadline ascending (nil last)
	// 2. exam ascending (nil last)
	// 3. university lexical
	assert.Equal(t, []int64{5, 6, 4, 3, 7, 2, 1}, ids(sorted))
}

func TestSortRecords_TiebreakByFacultyThenID(t *testing.T) {
	d := date(2026, time.January, 20)
	a := record(9, "Keio", withDeadline(d))
	a.Faculty = "Science"
	b := record(4, "Keio", withDeadline(d))
	c := record(2, "Keio", withDeadline(d))

	assert.Equal(t, []int64{2, 4, 9}, ids(SortRecords([]domain.ApplicationRecord{a, b, c})))
}

func TestSortRecords_DoesNotMutateInput(t *testing.T) {
	records := []domain.ApplicationRecord{
		record(2, "B", withDeadline(date(2026, time.March, 1))),
		record(1, "A", withDeadline(date(2026, time.January, 1))),
	}
	_ = SortRecords(records)
	assert.Equal(t, []int64{2, 1}, ids(records))
}

func TestSortRecords_Empty(t *testing.T) {
	assert.Empty(t, SortRecords(nil))
}
