package service

import (
	"context"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error)
}

type CalendarService interface {
	GetMonth(ctx context.Context, req app.CalendarRequest) (*app.CalendarResponse, error)
	GetRange(ctx context.Context, req app.CalendarRangeRequest) (*app.CalendarRangeResponse, error)
}

type ProgressService interface {
	// Upsert writes the batch atomically and returns the number of rows written.
	Upsert(ctx context.Context, viewer *domain.User, studentID int64, updates []app.ProgressUpdate) (int, error)
	Unplan(ctx context.Context, viewer *domain.User, studentID int64, subject string, level domain.Level, itemName string) error
	List(ctx context.Context, viewer *domain.User, studentID int64) ([]domain.ProgressItem, error)
	ApplyPreset(ctx context.Context, viewer *domain.User, studentID, presetID int64) (*app.PresetApplyResult, error)
}

type StudentService interface {
	Create(ctx context.Context, in app.StudentInput) (*domain.Student, error)
	Get(ctx context.Context, viewer *domain.User, id int64) (*domain.Student, error)
	List(ctx context.Context, viewer *domain.User, f repository.StudentFilter) ([]*domain.Student, error)
	Update(ctx context.Context, viewer *domain.User, id int64, in app.StudentInput) (*domain.Student, error)
	Delete(ctx context.Context, viewer *domain.User, id int64) error
	AssignInstructor(ctx context.Context, studentID int64, username string, main bool) error
	UnassignInstructor(ctx context.Context, studentID int64, username string) error
}

type UserService interface {
	Create(ctx context.Context, in app.UserInput) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, school string) ([]*domain.User, error)
}

type TextbookService interface {
	Create(ctx context.Context, in app.TextbookInput) (*domain.MasterTextbook, error)
	List(ctx context.Context, f repository.TextbookFilter) ([]*domain.MasterTextbook, error)
	ListGrouped(ctx context.Context, f repository.TextbookFilter) ([]app.SubjectCatalog, error)
	Update(ctx context.Context, id int64, in app.TextbookInput) (*domain.MasterTextbook, error)
	Delete(ctx context.Context, id int64) error
}

type ApplicationService interface {
	Create(ctx context.Context, viewer *domain.User, in app.ApplicationInput) (*domain.ApplicationRecord, error)
	Get(ctx context.Context, viewer *domain.User, id int64) (*domain.ApplicationRecord, error)
	List(ctx context.Context, viewer *domain.User, studentID int64) ([]domain.ApplicationRecord, error)
	Update(ctx context.Context, viewer *domain.User, id int64, in app.ApplicationInput) (*domain.ApplicationRecord, error)
	Delete(ctx context.Context, viewer *domain.User, id int64) error
}

type PastExamService interface {
	Log(ctx context.Context, viewer *domain.User, in app.PastExamInput) (*domain.PastExamResult, error)
	List(ctx context.Context, viewer *domain.User, studentID int64) ([]*domain.PastExamResult, error)
	Delete(ctx context.Context, viewer *domain.User, id int64) error
	TotalHours(ctx context.Context, viewer *domain.User, studentID int64) (float64, error)
}

type HomeworkService interface {
	Save(ctx context.Context, viewer *domain.User, in app.HomeworkInput) ([]*domain.Homework, error)
	List(ctx context.Context, viewer *domain.User, studentID int64) ([]*domain.Homework, error)
	SetStatus(ctx context.Context, viewer *domain.User, id int64, status domain.HomeworkStatus) error
	DeleteBook(ctx context.Context, viewer *domain.User, studentID int64, subject, book, customBook string) (int64, error)
}

type MockExamService interface {
	Add(ctx context.Context, viewer *domain.User, in app.MockExamInput) (*domain.MockExamResult, error)
	Get(ctx context.Context, viewer *domain.User, id int64) (*domain.MockExamResult, error)
	List(ctx context.Context, viewer *domain.User, studentID int64) ([]*domain.MockExamResult, error)
	Update(ctx context.Context, viewer *domain.User, id int64, in app.MockExamInput) (*domain.MockExamResult, error)
	Delete(ctx context.Context, viewer *domain.User, id int64) error
}

type EikenService interface {
	Record(ctx context.Context, viewer *domain.User, in app.EikenInput) (*domain.EikenResult, error)
	List(ctx context.Context, viewer *domain.User, studentID int64) ([]*domain.EikenResult, error)
	Delete(ctx context.Context, viewer *domain.User, id int64) error
}

type PresetService interface {
	Create(ctx context.Context, in app.PresetInput) (*domain.BulkPreset, error)
	Get(ctx context.Context, id int64) (*domain.BulkPreset, error)
	List(ctx context.Context, subject string) ([]*domain.BulkPreset, error)
	Update(ctx context.Context, id int64, in app.PresetInput) (*domain.BulkPreset, error)
	Delete(ctx context.Context, id int64) error
}

type StatisticsService interface {
	LevelStatistics(ctx context.Context, req app.StatisticsRequest) (*app.StatisticsResponse, error)
}

type ImportService interface {
	ImportTextbooks(ctx context.Context, path, sheet string) (*app.ImportResult, error)
}
