package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newHomework(studentID int64, book domain.HomeworkBook, task string, day int) *domain.Homework {
	return &domain.Homework{
		StudentID: studentID,
		Book:      book,
		Subject:   "English",
		Task:      task,
		TaskDate:  testutil.Date(2026, time.January, day),
		GroupID:   "group-1",
	}
}

func TestHomeworkRepo_CreateListByBook(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := testutil.NewTestStudent("Aiko")
	testutil.InsertStudent(t, database, s)
	ctx := context.Background()

	textbooks := NewSQLiteTextbookRepo(database)
	book := &domain.MasterTextbook{Subject: "English", Level: domain.LevelBasic, Name: "Target 1900"}
	require.NoError(t, textbooks.Create(ctx, book))

	repo := NewSQLiteHomeworkRepo(database, nil)
	catalog := domain.HomeworkBook{TextbookID: &book.ID}
	custom := domain.HomeworkBook{CustomName: "Handout"}

	later := newHomework(s.ID, catalog, "p.11-20", 11)
	earlier := newHomework(s.ID, catalog, "p.1-10", 10)
	handout := newHomework(s.ID, custom, "sheet 1", 10)
	handout.Achievement = ptr(80)
	for _, h := range []*domain.Homework{later, earlier, handout} {
		require.NoError(t, repo.Create(ctx, h))
	}
	assert.Equal(t, domain.HomeworkNotStarted, earlier.Status)

	all, err := repo.ListByStudent(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Handout", all[0].TextbookName, "books sort by name within a subject")
	assert.Equal(t, "p.1-10", all[1].Task, "tasks sort by date within a book")
	assert.Equal(t, "Target 1900", all[1].TextbookName)
	require.NotNil(t, all[0].Achievement)
	assert.Equal(t, 80, *all[0].Achievement)

	forBook, err := repo.ListForBook(ctx, s.ID, catalog)
	require.NoError(t, err)
	require.Len(t, forBook, 2)
	require.NotNil(t, forBook[0].Book.TextbookID)
	assert.Equal(t, book.ID, *forBook[0].Book.TextbookID)

	require.NoError(t, repo.UpdateStatus(ctx, earlier.ID, domain.HomeworkDone))
	got, err := repo.GetByID(ctx, earlier.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.HomeworkDone, got.Status)
	assert.Equal(t, testutil.Date(2026, time.January, 10), got.TaskDate)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, 999, domain.HomeworkDone), ErrNotFound)

	n, err := repo.DeleteForBook(ctx, s.ID, catalog)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	n, err = repo.DeleteForBook(ctx, s.ID, catalog)
	require.NoError(t, err)
	assert.Zero(t, n)

	left, err := repo.ListByStudent(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "sheet 1", left[0].Task)
}

func TestHomeworkRepo_CatalogDeleteUnlinksTasks(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := testutil.NewTestStudent("Aiko")
	testutil.InsertStudent(t, database, s)
	ctx := context.Background()

	textbooks := NewSQLiteTextbookRepo(database)
	book := &domain.MasterTextbook{Subject: "English", Level: domain.LevelBasic, Name: "Target 1900"}
	require.NoError(t, textbooks.Create(ctx, book))
	repo := NewSQLiteHomeworkRepo(database, nil)
	h := newHomework(s.ID, domain.HomeworkBook{TextbookID: &book.ID}, "p.1-10", 10)
	require.NoError(t, repo.Create(ctx, h))

	require.NoError(t, textbooks.Delete(ctx, book.ID))

	got, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err, "the task outlives its catalog book")
	assert.Nil(t, got.Book.TextbookID)
	assert.Empty(t, got.TextbookName)
}
