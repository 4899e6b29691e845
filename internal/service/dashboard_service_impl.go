package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/progress"
	"github.com/alexanderramin/juku/internal/repository"
)

type dashboardService struct {
	students  repository.StudentRepo
	progress  repository.ProgressRepo
	pastExams repository.PastExamRepo
	table     progress.DeviationTable
	order     progress.SubjectOrder
	observer  UseCaseObserver
}

func NewDashboardService(
	students repository.StudentRepo,
	progressRepo repository.ProgressRepo,
	pastExams repository.PastExamRepo,
	table progress.DeviationTable,
	order progress.SubjectOrder,
	observers ...UseCaseObserver,
) DashboardService {
	return &dashboardService{
		students:  students,
		progress:  progressRepo,
		pastExams: pastExams,
		table:     table,
		order:     order,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req app.DashboardRequest) (resp *app.DashboardResponse, err error) {
	run := startUseCase(s.observer, "dashboard", map[string]any{
		"student_id": req.StudentID,
		"subject":    req.Subject,
	})
	defer func() { run.finish(ctx, err) }()

	if err = validateInput(req); err != nil {
		return nil, err
	}

	student, err := loadAccessibleStudent(ctx, s.students, req.Viewer, req.StudentID)
	if err != nil {
		return nil, err
	}

	rows, err := s.progress.FetchProgress(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("loading progress: %w", err)
	}
	items := progress.AdjustItems(rows, domain.DeviationAsFloat(student.DeviationValue), s.table)

	var externalHours float64
	if req.Subject != "" {
		items = progress.FilterSubject(items, req.Subject)
	} else {
		minutes, err := s.pastExams.TotalMinutes(ctx, student.ID)
		if err != nil {
			return nil, fmt.Errorf("loading past exam time: %w", err)
		}
		externalHours = float64(minutes) / 60
	}

	report := progress.BuildReport(items, externalHours, s.order)
	run.set("item_count", len(items))
	run.set("achievement_rate", report.Overall.AchievementRate)

	return &app.DashboardResponse{
		Student:  student,
		Subject:  req.Subject,
		Overall:  report.Overall,
		Subjects: report.Subjects,
		Items:    dashboardItems(items, s.order),
	}, nil
}
