package progress

import "github.com/alexanderramin/juku/internal/domain"

// LevelCompletion records that a student finished at least one item of a
// subject at a level.
type LevelCompletion struct {
	StudentID int64
	Subject   string
	Level     domain.Level
}

// LevelCounts maps each statistics level to a distinct-student count.
type LevelCounts map[domain.Level]int

// LevelStatistics counts distinct students per (subject, level) for the
// statistics levels. Every subject in subjects is present, with zero counts
// when nobody completed anything there. Rows at other levels are ignored.
func LevelStatistics(rows []LevelCompletion, subjects []string) map[string]LevelCounts {
	tracked := make(map[domain.Level]bool, len(domain.StatisticsLevels))
	for _, l := range domain.StatisticsLevels {
		tracked[l] = true
	}

	stats := make(map[string]LevelCounts)
	ensure := func(subject string) LevelCounts {
		counts, ok := stats[subject]
		if !ok {
			counts = make(LevelCounts, len(domain.StatisticsLevels))
			for _, l := range domain.StatisticsLevels {
				counts[l] = 0
			}
			stats[subject] = counts
		}
		return counts
	}

	seen := make(map[LevelCompletion]bool)
	for _, r := range rows {
		if !tracked[r.Level] || seen[r] {
			continue
		}
		seen[r] = true
		ensure(r.Subject)[r.Level]++
	}
	for _, subject := range subjects {
		ensure(subject)
	}
	return stats
}
