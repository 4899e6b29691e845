package service

import (
	"context"
	"sort"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/progress"
	"github.com/alexanderramin/juku/internal/repository"
)

// loadAccessibleStudent fetches the student and applies the viewer's
// capability check.
func loadAccessibleStudent(ctx context.Context, students repository.StudentRepo, viewer *domain.User, id int64) (*domain.Student, error) {
	student, err := students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanAccessStudent(viewer, student) {
		return nil, ErrAccessDenied
	}
	return student, nil
}

// dashboardItems converts adjusted items into response rows ordered by
// subject order, then level order, then name.
func dashboardItems(items []progress.Item, order progress.SubjectOrder) []app.DashboardItem {
	seen := make(map[string]bool)
	var subjects []string
	for _, it := range items {
		if !seen[it.Subject] {
			seen[it.Subject] = true
			subjects = append(subjects, it.Subject)
		}
	}
	order.Sort(subjects)
	rank := make(map[string]int, len(subjects))
	for i, s := range subjects {
		rank[s] = i
	}

	out := make([]app.DashboardItem, 0, len(items))
	for _, it := range items {
		out = append(out, app.DashboardItem{
			Subject:        it.Subject,
			Level:          it.Level,
			Name:           it.Name,
			BaseHours:      it.BaseDuration,
			AdjustedHours:  it.Duration,
			AchievedHours:  it.AchievedHours(),
			Planned:        it.Planned,
			Done:           it.Done,
			CompletedUnits: it.CompletedUnits,
			TotalUnits:     it.TotalUnits,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		// 1. Subject display order
		if rank[a.Subject] != rank[b.Subject] {
			return rank[a.Subject] < rank[b.Subject]
		}
		// 2. Level order, unknown levels last
		if ra, rb := domain.LevelRank(a.Level), domain.LevelRank(b.Level); ra != rb {
			return ra < rb
		}
		// 3. Name
		return a.Name < b.Name
	})
	return out
}

// hasAnyDate reports whether at least one of the record's dates is set.
func hasAnyDate(rec domain.ApplicationRecord) bool {
	for _, f := range domain.DateFields {
		if rec.Date(f) != nil {
			return true
		}
	}
	return false
}
