package repository

import (
	"context"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/progress"
)

// StudentFilter narrows student listings. Zero fields match everything.
type StudentFilter struct {
	School string
	Grade  string
	// Instructor limits the result to students the user is assigned to.
	Instructor string
}

// TextbookFilter narrows catalog listings. Search matches a substring of
// the book name.
type TextbookFilter struct {
	Subject string
	Level   domain.Level
	Search  string
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, school string) ([]*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type StudentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	List(ctx context.Context, f StudentFilter) ([]*domain.Student, error)
	Update(ctx context.Context, s *domain.Student) error
	Delete(ctx context.Context, id int64) error
	AssignInstructor(ctx context.Context, studentID, userID int64, main bool) error
	UnassignInstructor(ctx context.Context, studentID, userID int64) error
}

type TextbookRepo interface {
	Create(ctx context.Context, b *domain.MasterTextbook) error
	// Upsert inserts the book or updates the duration of the existing
	// (subject, level, name) entry. It reports whether a row was inserted.
	Upsert(ctx context.Context, b *domain.MasterTextbook) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.MasterTextbook, error)
	List(ctx context.Context, f TextbookFilter) ([]*domain.MasterTextbook, error)
	ListSubjects(ctx context.Context) ([]string, error)
	Update(ctx context.Context, b *domain.MasterTextbook) error
	Delete(ctx context.Context, id int64) error
}

type ProgressRepo interface {
	// FetchProgress returns every progress row for the student with
	// BaseDuration resolved from the override, then the catalog, then 0.
	FetchProgress(ctx context.Context, studentID int64) ([]domain.ProgressItem, error)
	Get(ctx context.Context, studentID int64, subject string, level domain.Level, itemName string) (*domain.ProgressItem, error)
	// Upsert writes p keyed by (student, subject, level, item name). A nil
	// Duration keeps the stored override.
	Upsert(ctx context.Context, p *domain.ProgressItem) error
	Delete(ctx context.Context, id int64) error
	ListCompletedLevels(ctx context.Context, f StudentFilter) ([]progress.LevelCompletion, error)
}

type ApplicationRepo interface {
	// FetchApplicationRecords returns the student's records in id order.
	// Unparseable stored dates are read as absent.
	FetchApplicationRecords(ctx context.Context, studentID int64) ([]domain.ApplicationRecord, error)
	// List returns the records in table order: latest exam first, then
	// latest deadline, undated last.
	List(ctx context.Context, studentID int64) ([]domain.ApplicationRecord, error)
	Create(ctx context.Context, a *domain.ApplicationRecord) error
	GetByID(ctx context.Context, id int64) (*domain.ApplicationRecord, error)
	Update(ctx context.Context, a *domain.ApplicationRecord) error
	Delete(ctx context.Context, id int64) error
}

type PastExamRepo interface {
	Create(ctx context.Context, r *domain.PastExamResult) error
	GetByID(ctx context.Context, id int64) (*domain.PastExamResult, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*domain.PastExamResult, error)
	Delete(ctx context.Context, id int64) error
	// TotalMinutes sums time_required over the student's results.
	TotalMinutes(ctx context.Context, studentID int64) (int, error)
}

type HomeworkRepo interface {
	Create(ctx context.Context, h *domain.Homework) error
	GetByID(ctx context.Context, id int64) (*domain.Homework, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*domain.Homework, error)
	ListForBook(ctx context.Context, studentID int64, book domain.HomeworkBook) ([]*domain.Homework, error)
	UpdateStatus(ctx context.Context, id int64, status domain.HomeworkStatus) error
	DeleteForBook(ctx context.Context, studentID int64, book domain.HomeworkBook) (int64, error)
}

type MockExamRepo interface {
	Create(ctx context.Context, m *domain.MockExamResult) error
	GetByID(ctx context.Context, id int64) (*domain.MockExamResult, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*domain.MockExamResult, error)
	Update(ctx context.Context, m *domain.MockExamResult) error
	Delete(ctx context.Context, id int64) error
}

type EikenRepo interface {
	// Upsert keeps one result per (student, grade).
	Upsert(ctx context.Context, e *domain.EikenResult) error
	GetByID(ctx context.Context, id int64) (*domain.EikenResult, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*domain.EikenResult, error)
	Delete(ctx context.Context, id int64) error
}

type PresetRepo interface {
	Create(ctx context.Context, p *domain.BulkPreset) error
	GetByID(ctx context.Context, id int64) (*domain.BulkPreset, error)
	GetByName(ctx context.Context, subject, name string) (*domain.BulkPreset, error)
	List(ctx context.Context, subject string) ([]*domain.BulkPreset, error)
	Update(ctx context.Context, p *domain.BulkPreset) error
	Delete(ctx context.Context, id int64) error
}
