package progress

import (
	"math"

	"github.com/alexanderramin/juku/internal/domain"
)

// DefaultDeviationFactor is the share of nominal duration added or removed
// per deviation point between a level and a student.
const DefaultDeviationFactor = 0.025

// DeviationTable maps each level to its reference deviation value.
// Build it once at startup and treat it as read-only afterwards.
type DeviationTable struct {
	Factor float64
	Levels map[domain.Level]float64
}

// DefaultDeviationTable returns the stock reference values.
func DefaultDeviationTable() DeviationTable {
	return DeviationTable{
		Factor: DefaultDeviationFactor,
		Levels: map[domain.Level]float64{
			domain.LevelBasic: 50,
			domain.LevelTier2: 60,
			domain.LevelTier3: 70,
			domain.LevelTier4: 75,
		},
	}
}

// Adjust scales base to the gap between the level's reference deviation and
// the student's deviation:
//
//	factor   = (levelDeviation - studentDeviation) * Factor + 1
//	adjusted = max(0, factor * base)
//
// A nil deviation or a level missing from the table returns base unchanged.
func (t DeviationTable) Adjust(base float64, level domain.Level, studentDeviation *float64) float64 {
	if studentDeviation == nil {
		return base
	}
	levelDeviation, ok := t.Levels[level]
	if !ok {
		return base
	}
	factor := (levelDeviation-*studentDeviation)*t.Factor + 1
	return math.Max(0, factor*base)
}

// Item is the aggregator's view of one progress row, with its duration
// already adjusted for the student.
type Item struct {
	Subject        string
	Level          domain.Level
	Name           string
	BaseDuration   float64
	Duration       float64
	Planned        bool
	Done           bool
	CompletedUnits int
	TotalUnits     int
}

// AdjustItems converts stored progress rows into aggregator items.
func AdjustItems(rows []domain.ProgressItem, studentDeviation *float64, table DeviationTable) []Item {
	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, Item{
			Subject:        r.Subject,
			Level:          r.Level,
			Name:           r.ItemName,
			BaseDuration:   r.BaseDuration,
			Duration:       table.Adjust(r.BaseDuration, r.Level, studentDeviation),
			Planned:        r.IsPlanned,
			Done:           r.IsDone,
			CompletedUnits: r.CompletedUnits,
			TotalUnits:     r.TotalUnits,
		})
	}
	return items
}
