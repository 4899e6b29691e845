package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
)

var testUserCounter atomic.Int64

// Date returns a calendar date at UTC midnight.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DatePtr is Date returning a pointer.
func DatePtr(y int, m time.Month, d int) *time.Time {
	t := Date(y, m, d)
	return &t
}

// User options
type UserOption func(*domain.User)

func AsAdmin() UserOption {
	return func(u *domain.User) { u.Role = domain.RoleAdmin }
}

func WithUserSchool(school string) UserOption {
	return func(u *domain.User) { u.School = school }
}

// NewTestUser returns an instructor at "Shibuya". An empty username gets a
// unique generated one.
func NewTestUser(username string, opts ...UserOption) *domain.User {
	if username == "" {
		username = fmt.Sprintf("instructor%02d", testUserCounter.Add(1))
	}
	u := &domain.User{Username: username, Role: domain.RoleInstructor, School: "Shibuya"}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Student options
type StudentOption func(*domain.Student)

func WithDeviation(v int) StudentOption {
	return func(s *domain.Student) { s.DeviationValue = &v }
}

func WithSchool(school string) StudentOption {
	return func(s *domain.Student) { s.School = school }
}

func WithGrade(grade string) StudentOption {
	return func(s *domain.Student) { s.Grade = grade }
}

func WithTargetLevel(l domain.Level) StudentOption {
	return func(s *domain.Student) { s.TargetLevel = l }
}

func NewTestStudent(name string, opts ...StudentOption) *domain.Student {
	s := &domain.Student{
		Name:        name,
		School:      "Shibuya",
		Grade:       "12",
		TargetLevel: domain.LevelTier3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Progress options
type ProgressOption func(*domain.ProgressItem)

func WithUnits(completed, total int) ProgressOption {
	return func(p *domain.ProgressItem) {
		p.CompletedUnits = completed
		p.TotalUnits = total
	}
}

func WithOverride(hours float64) ProgressOption {
	return func(p *domain.ProgressItem) { p.Duration = &hours }
}

func Done() ProgressOption {
	return func(p *domain.ProgressItem) { p.IsDone = true }
}

func Unplanned() ProgressOption {
	return func(p *domain.ProgressItem) { p.IsPlanned = false }
}

// NewTestProgress returns a planned, not-done item with 0/1 units.
func NewTestProgress(studentID int64, subject string, level domain.Level, name string, opts ...ProgressOption) *domain.ProgressItem {
	p := &domain.ProgressItem{
		StudentID:  studentID,
		Subject:    subject,
		Level:      level,
		ItemName:   name,
		IsPlanned:  true,
		TotalUnits: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Application options
type ApplicationOption func(*domain.ApplicationRecord)

func WithFaculty(f string) ApplicationOption {
	return func(a *domain.ApplicationRecord) { a.Faculty = f }
}

func WithApplicationDeadline(d time.Time) ApplicationOption {
	return func(a *domain.ApplicationRecord) { a.ApplicationDeadline = &d }
}

func WithExamDate(d time.Time) ApplicationOption {
	return func(a *domain.ApplicationRecord) { a.ExamDate = &d }
}

func WithAnnouncementDate(d time.Time) ApplicationOption {
	return func(a *domain.ApplicationRecord) { a.AnnouncementDate = &d }
}

func WithProcedureDeadline(d time.Time) ApplicationOption {
	return func(a *domain.ApplicationRecord) { a.ProcedureDeadline = &d }
}

func WithResult(r domain.ExamResult) ApplicationOption {
	return func(a *domain.ApplicationRecord) { a.Result = r }
}

func NewTestApplication(studentID int64, university string, opts ...ApplicationOption) *domain.ApplicationRecord {
	a := &domain.ApplicationRecord{
		StudentID:  studentID,
		University: university,
		Faculty:    "Economics",
		ExamSystem: "general",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Past exam options
type PastExamOption func(*domain.PastExamResult)

func WithScore(correct, total int) PastExamOption {
	return func(e *domain.PastExamResult) {
		e.CorrectAnswers = &correct
		e.TotalQuestions = &total
	}
}

func WithExamOn(d time.Time) PastExamOption {
	return func(e *domain.PastExamResult) { e.Date = d }
}

// NewTestPastExam returns a result taking minutes of practice time; a
// negative minutes leaves the time unrecorded.
func NewTestPastExam(studentID int64, subject string, minutes int, opts ...PastExamOption) *domain.PastExamResult {
	e := &domain.PastExamResult{
		StudentID:  studentID,
		Date:       Date(2025, time.November, 3),
		University: "Keio",
		Faculty:    "Law",
		ExamSystem: "general",
		Year:       2024,
		Subject:    subject,
	}
	if minutes >= 0 {
		e.TimeRequiredMin = &minutes
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
