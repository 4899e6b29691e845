package service

import (
	"context"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
)

type eikenService struct {
	students repository.StudentRepo
	eiken    repository.EikenRepo
}

func NewEikenService(students repository.StudentRepo, eiken repository.EikenRepo) EikenService {
	return &eikenService{students: students, eiken: eiken}
}

// Record stores the result for its grade, replacing an earlier one.
func (s *eikenService) Record(ctx context.Context, viewer *domain.User, in app.EikenInput) (*domain.EikenResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, in.StudentID); err != nil {
		return nil, err
	}
	r, err := in.EikenResult()
	if err != nil {
		return nil, err
	}
	if err := s.eiken.Upsert(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *eikenService) List(ctx context.Context, viewer *domain.User, studentID int64) ([]*domain.EikenResult, error) {
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return nil, err
	}
	return s.eiken.ListByStudent(ctx, studentID)
}

func (s *eikenService) Delete(ctx context.Context, viewer *domain.User, id int64) error {
	r, err := s.eiken.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, r.StudentID); err != nil {
		return err
	}
	return s.eiken.Delete(ctx, id)
}
