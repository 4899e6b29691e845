package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
)

type studentService struct {
	students repository.StudentRepo
	users    repository.UserRepo
}

func NewStudentService(students repository.StudentRepo, users repository.UserRepo) StudentService {
	return &studentService{students: students, users: users}
}

func (s *studentService) Create(ctx context.Context, in app.StudentInput) (*domain.Student, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	student := &domain.Student{}
	in.Apply(student)
	if err := student.Validate(); err != nil {
		return nil, fieldError("student", err.Error())
	}
	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) Get(ctx context.Context, viewer *domain.User, id int64) (*domain.Student, error) {
	return loadAccessibleStudent(ctx, s.students, viewer, id)
}

// List returns every matching student for admins and only assigned
// students for instructors.
func (s *studentService) List(ctx context.Context, viewer *domain.User, f repository.StudentFilter) ([]*domain.Student, error) {
	if viewer == nil {
		return nil, ErrAccessDenied
	}
	if !viewer.IsAdmin() {
		f.Instructor = viewer.Username
	}
	return s.students.List(ctx, f)
}

func (s *studentService) Update(ctx context.Context, viewer *domain.User, id int64, in app.StudentInput) (*domain.Student, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	student, err := loadAccessibleStudent(ctx, s.students, viewer, id)
	if err != nil {
		return nil, err
	}
	in.Apply(student)
	if err := student.Validate(); err != nil {
		return nil, fieldError("student", err.Error())
	}
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes the student with all progress, applications and past exam
// results. Only admins may delete.
func (s *studentService) Delete(ctx context.Context, viewer *domain.User, id int64) error {
	if !viewer.IsAdmin() {
		return ErrAccessDenied
	}
	return s.students.Delete(ctx, id)
}

func (s *studentService) AssignInstructor(ctx context.Context, studentID int64, username string, main bool) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("instructor %q: %w", username, err)
	}
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return err
	}
	return s.students.AssignInstructor(ctx, studentID, user.ID, main)
}

func (s *studentService) UnassignInstructor(ctx context.Context, studentID int64, username string) error {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("instructor %q: %w", username, err)
	}
	return s.students.UnassignInstructor(ctx, studentID, user.ID)
}
