package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
)

type mockExamService struct {
	students  repository.StudentRepo
	mockExams repository.MockExamRepo
	uow       db.UnitOfWork
}

func NewMockExamService(students repository.StudentRepo, mockExams repository.MockExamRepo, uow db.UnitOfWork) MockExamService {
	return &mockExamService{students: students, mockExams: mockExams, uow: uow}
}

func (s *mockExamService) Add(ctx context.Context, viewer *domain.User, in app.MockExamInput) (*domain.MockExamResult, error) {
	r, err := s.prepare(in)
	if err != nil {
		return nil, err
	}
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, in.StudentID); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteMockExamRepo(tx, nil).Create(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *mockExamService) Get(ctx context.Context, viewer *domain.User, id int64) (*domain.MockExamResult, error) {
	r, err := s.mockExams.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, r.StudentID); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *mockExamService) List(ctx context.Context, viewer *domain.User, studentID int64) ([]*domain.MockExamResult, error) {
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return nil, err
	}
	return s.mockExams.ListByStudent(ctx, studentID)
}

// Update replaces the stored result with in. The result stays with its
// student whatever in.StudentID says.
func (s *mockExamService) Update(ctx context.Context, viewer *domain.User, id int64, in app.MockExamInput) (*domain.MockExamResult, error) {
	existing, err := s.Get(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	in.StudentID = existing.StudentID
	r, err := s.prepare(in)
	if err != nil {
		return nil, err
	}
	r.ID = id
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteMockExamRepo(tx, nil).Update(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *mockExamService) Delete(ctx context.Context, viewer *domain.User, id int64) error {
	if _, err := s.Get(ctx, viewer, id); err != nil {
		return err
	}
	return s.mockExams.Delete(ctx, id)
}

// prepare validates in, including that every score belongs to the format.
func (s *mockExamService) prepare(in app.MockExamInput) (*domain.MockExamResult, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	format := domain.MockExamFormat(in.Format)
	keys := make([]string, 0, len(in.Scores))
	for k := range in.Scores {
		keys = append(keys, strings.TrimSpace(k))
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !format.HasSubject(k) {
			return nil, fieldError("scores", fmt.Sprintf("%q is not a %s subject (want %s)",
				k, format, strings.Join(format.Subjects(), ", ")))
		}
	}
	return in.Result()
}
