package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
)

type pastExamService struct {
	students  repository.StudentRepo
	pastExams repository.PastExamRepo
}

func NewPastExamService(students repository.StudentRepo, pastExams repository.PastExamRepo) PastExamService {
	return &pastExamService{students: students, pastExams: pastExams}
}

func (s *pastExamService) Log(ctx context.Context, viewer *domain.User, in app.PastExamInput) (*domain.PastExamResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.CorrectAnswers != nil && in.TotalQuestions != nil && *in.CorrectAnswers > *in.TotalQuestions {
		return nil, fieldError("correct_answers", "must not exceed total_questions")
	}
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, in.StudentID); err != nil {
		return nil, err
	}
	r, err := in.Result()
	if err != nil {
		return nil, err
	}
	if err := s.pastExams.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *pastExamService) List(ctx context.Context, viewer *domain.User, studentID int64) ([]*domain.PastExamResult, error) {
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return nil, err
	}
	return s.pastExams.ListByStudent(ctx, studentID)
}

func (s *pastExamService) Delete(ctx context.Context, viewer *domain.User, id int64) error {
	r, err := s.pastExams.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, r.StudentID); err != nil {
		return err
	}
	return s.pastExams.Delete(ctx, id)
}

// TotalHours is the student's recorded practice time in hours.
func (s *pastExamService) TotalHours(ctx context.Context, viewer *domain.User, studentID int64) (float64, error) {
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return 0, err
	}
	minutes, err := s.pastExams.TotalMinutes(ctx, studentID)
	if err != nil {
		return 0, fmt.Errorf("summing past exam time: %w", err)
	}
	return float64(minutes) / 60, nil
}
