package progress

import "math"

// Summary holds completion metrics for a set of progress items.
type Summary struct {
	PlannedHours float64
	// AchievedHours includes ExternalHours.
	AchievedHours      float64
	ExternalHours      float64
	AchievementRate    float64 // percent, item hours only
	CompletedItemCount int
	PlannedItemCount   int
}

// ItemAchievedHours returns AchievedHours without the external contribution.
func (s Summary) ItemAchievedHours() float64 {
	return s.AchievedHours - s.ExternalHours
}

// SubjectSummary is a Summary scoped to one subject.
type SubjectSummary struct {
	Subject string
	Summary
}

// Report is the whole-student aggregate plus the per-subject breakdown.
type Report struct {
	Overall  Summary
	Subjects []SubjectSummary
}

// CompletionRatio returns completed/total clamped to [0, 1].
// A total below 1 is treated as 1.
func CompletionRatio(completed, total int) float64 {
	if total < 1 {
		total = 1
	}
	ratio := float64(completed) / float64(total)
	return math.Min(1, math.Max(0, ratio))
}

// AchievedHours returns the share of the item's duration covered by its
// completed units. Unplanned items contribute nothing.
func (it Item) AchievedHours() float64 {
	if !it.Planned {
		return 0
	}
	return math.Max(0, it.Duration) * CompletionRatio(it.CompletedUnits, it.TotalUnits)
}

// Summarize aggregates items. externalHours (e.g. past-exam practice time)
// is added to AchievedHours only; it never enters PlannedHours or the
// achievement rate.
func Summarize(items []Item, externalHours float64) Summary {
	var s Summary
	var itemAchieved float64
	for _, it := range items {
		if !it.Planned {
			continue
		}
		s.PlannedItemCount++
		s.PlannedHours += math.Max(0, it.Duration)
		itemAchieved += it.AchievedHours()
		if it.Done {
			s.CompletedItemCount++
		}
	}

	s.ExternalHours = math.Max(0, externalHours)
	s.AchievedHours = itemAchieved + s.ExternalHours
	if s.PlannedHours > 0 {
		s.AchievementRate = itemAchieved / s.PlannedHours * 100
	}
	return s
}

// BuildReport computes the overall summary (with external hours) and one
// summary per subject that has at least one planned item (without external
// hours). Subjects are ordered by order, then lexically.
func BuildReport(items []Item, externalHours float64, order SubjectOrder) Report {
	groups := make(map[string][]Item)
	for _, it := range items {
		groups[it.Subject] = append(groups[it.Subject], it)
	}

	var subjects []string
	for subject, group := range groups {
		for _, it := range group {
			if it.Planned {
				subjects = append(subjects, subject)
				break
			}
		}
	}
	order.Sort(subjects)

	report := Report{
		Overall:  Summarize(items, externalHours),
		Subjects: make([]SubjectSummary, 0, len(subjects)),
	}
	for _, subject := range subjects {
		report.Subjects = append(report.Subjects, SubjectSummary{
			Subject: subject,
			Summary: Summarize(groups[subject], 0),
		})
	}
	return report
}

// FilterSubject returns the items belonging to subject.
func FilterSubject(items []Item, subject string) []Item {
	var out []Item
	for _, it := range items {
		if it.Subject == subject {
			out = append(out, it)
		}
	}
	return out
}
