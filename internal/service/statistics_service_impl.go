package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/progress"
	"github.com/alexanderramin/juku/internal/repository"
)

type statisticsService struct {
	progress  repository.ProgressRepo
	textbooks repository.TextbookRepo
	order     progress.SubjectOrder
}

func NewStatisticsService(progressRepo repository.ProgressRepo, textbooks repository.TextbookRepo, order progress.SubjectOrder) StatisticsService {
	return &statisticsService{progress: progressRepo, textbooks: textbooks, order: order}
}

// LevelStatistics counts, per subject, the students who finished material
// at each statistics level. Every catalog subject is listed.
func (s *statisticsService) LevelStatistics(ctx context.Context, req app.StatisticsRequest) (*app.StatisticsResponse, error) {
	rows, err := s.progress.ListCompletedLevels(ctx, repository.StudentFilter{School: req.School, Grade: req.Grade})
	if err != nil {
		return nil, err
	}
	subjects, err := s.textbooks.ListSubjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading catalog subjects: %w", err)
	}

	stats := progress.LevelStatistics(rows, subjects)
	names := make([]string, 0, len(stats))
	for subject := range stats {
		names = append(names, subject)
	}
	s.order.Sort(names)

	resp := &app.StatisticsResponse{Levels: append([]domain.Level(nil), domain.StatisticsLevels...)}
	for _, subject := range names {
		resp.Subjects = append(resp.Subjects, app.SubjectLevelStats{Subject: subject, Counts: stats[subject]})
	}
	return resp, nil
}
