package service

import (
	"context"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
)

type applicationService struct {
	students     repository.StudentRepo
	applications repository.ApplicationRepo
}

func NewApplicationService(students repository.StudentRepo, applications repository.ApplicationRepo) ApplicationService {
	return &applicationService{students: students, applications: applications}
}

func (s *applicationService) Create(ctx context.Context, viewer *domain.User, in app.ApplicationInput) (*domain.ApplicationRecord, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, in.StudentID); err != nil {
		return nil, err
	}
	rec, err := in.Record()
	if err != nil {
		return nil, err
	}
	if err := s.applications.Create(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *applicationService) Get(ctx context.Context, viewer *domain.User, id int64) (*domain.ApplicationRecord, error) {
	rec, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, rec.StudentID); err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns the student's records in table order.
func (s *applicationService) List(ctx context.Context, viewer *domain.User, studentID int64) ([]domain.ApplicationRecord, error) {
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return nil, err
	}
	return s.applications.List(ctx, studentID)
}

// Update replaces every field of the record. The student may not change.
func (s *applicationService) Update(ctx context.Context, viewer *domain.User, id int64, in app.ApplicationInput) (*domain.ApplicationRecord, error) {
	existing, err := s.Get(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	in.StudentID = existing.StudentID
	if err := validateInput(in); err != nil {
		return nil, err
	}
	rec, err := in.Record()
	if err != nil {
		return nil, err
	}
	rec.ID = id
	if err := s.applications.Update(ctx, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *applicationService) Delete(ctx context.Context, viewer *domain.User, id int64) error {
	if _, err := s.Get(ctx, viewer, id); err != nil {
		return err
	}
	return s.applications.Delete(ctx, id)
}
