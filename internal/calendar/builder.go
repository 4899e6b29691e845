package calendar

import (
	"time"

	"github.com/alexanderramin/juku/internal/domain"
)

// Headers returns one DayHeader per day of ym.
func Headers(ym YearMonth) []DayHeader {
	n := ym.Days()
	days := make([]DayHeader, n)
	for i := range days {
		wd := time.Date(ym.Year, ym.Month, i+1, 0, 0, 0, 0, time.UTC).Weekday()
		days[i] = DayHeader{Day: i + 1, Weekday: wd, Weekend: isWeekend(wd)}
	}
	return days
}

// BuildMonth lays sorted records out over ym. Records with no date inside
// the month are omitted; the rest keep their input order. Callers sort once
// with SortRecords so that consecutive months list records consistently.
func BuildMonth(sorted []domain.ApplicationRecord, ym YearMonth) Month {
	month := Month{YearMonth: ym, Days: Headers(ym)}

	for _, rec := range sorted {
		row, ok := buildRow(rec, month.Days, ym)
		if ok {
			month.Rows = append(month.Rows, row)
		}
	}
	return month
}

func buildRow(rec domain.ApplicationRecord, days []DayHeader, ym YearMonth) (Row, bool) {
	cells := make([]Cell, len(days))
	for i, h := range days {
		cells[i] = Cell{DayHeader: h}
	}

	hit := false
	for _, cat := range Precedence {
		d := rec.Date(cat.Field())
		if d == nil || !ym.Contains(*d) {
			continue
		}
		cell := &cells[d.Day()-1]
		cell.Categories = append(cell.Categories, cat)
		if cell.Primary == CategoryNone {
			cell.Primary = cat
		}
		hit = true
	}
	if !hit {
		return Row{}, false
	}
	return Row{Record: rec, Cells: cells}, true
}

// MaxRangeMonths caps how many months one range may print.
const MaxRangeMonths = 24

// BuildRange sorts records once and builds every month from from to to
// inclusive. It returns nil when to is before from.
func BuildRange(records []domain.ApplicationRecord, from, to YearMonth) []Month {
	if to.Before(from) {
		return nil
	}
	sorted := SortRecords(records)

	var months []Month
	for ym := from; !to.Before(ym); ym = ym.Next() {
		months = append(months, BuildMonth(sorted, ym))
	}
	return months
}
