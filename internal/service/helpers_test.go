package service

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
	"github.com/alexanderramin/juku/internal/testutil"
	"github.com/stretchr/testify/require"
)

type repos struct {
	db           *sql.DB
	uow          db.UnitOfWork
	users        *repository.SQLiteUserRepo
	students     *repository.SQLiteStudentRepo
	textbooks    *repository.SQLiteTextbookRepo
	progress     *repository.SQLiteProgressRepo
	applications *repository.SQLiteApplicationRepo
	pastExams    *repository.SQLitePastExamRepo
	homework     *repository.SQLiteHomeworkRepo
	mockExams    *repository.SQLiteMockExamRepo
	eiken        *repository.SQLiteEikenRepo
	presets      *repository.SQLitePresetRepo
}

func setupRepos(t *testing.T) *repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &repos{
		db:           database,
		uow:          testutil.NewTestUoW(database),
		users:        repository.NewSQLiteUserRepo(database),
		students:     repository.NewSQLiteStudentRepo(database),
		textbooks:    repository.NewSQLiteTextbookRepo(database),
		progress:     repository.NewSQLiteProgressRepo(database),
		applications: repository.NewSQLiteApplicationRepo(database, logger),
		pastExams:    repository.NewSQLitePastExamRepo(database, logger),
		homework:     repository.NewSQLiteHomeworkRepo(database, logger),
		mockExams:    repository.NewSQLiteMockExamRepo(database, logger),
		eiken:        repository.NewSQLiteEikenRepo(database, logger),
		presets:      repository.NewSQLitePresetRepo(database),
	}
}

func (r *repos) createUser(t *testing.T, u *domain.User) *domain.User {
	t.Helper()
	require.NoError(t, r.users.Create(context.Background(), u))
	return u
}

func (r *repos) createStudent(t *testing.T, s *domain.Student) *domain.Student {
	t.Helper()
	require.NoError(t, r.students.Create(context.Background(), s))
	return s
}

// assign links the instructor to the student and returns the student as
// reloaded from the store.
func (r *repos) assign(t *testing.T, s *domain.Student, u *domain.User, main bool) *domain.Student {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, r.students.AssignInstructor(ctx, s.ID, u.ID, main))
	loaded, err := r.students.GetByID(ctx, s.ID)
	require.NoError(t, err)
	return loaded
}

func (r *repos) createBook(t *testing.T, subject string, level domain.Level, name string, hours float64) {
	t.Helper()
	require.NoError(t, r.textbooks.Create(context.Background(),
		&domain.MasterTextbook{Subject: subject, Level: level, Name: name, Duration: &hours}))
}

func (r *repos) upsertProgress(t *testing.T, p *domain.ProgressItem) {
	t.Helper()
	require.NoError(t, r.progress.Upsert(context.Background(), p))
}

func (r *repos) progressService(uow db.UnitOfWork) ProgressService {
	return NewProgressService(r.students, r.progress, r.textbooks, r.presets, uow)
}

func admin() *domain.User {
	return testutil.NewTestUser("root", testutil.AsAdmin())
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func ptr[T any](v T) *T {
	return &v
}
