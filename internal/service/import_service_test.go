package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
	"github.com/alexanderramin/juku/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingObserver struct {
	events []UseCaseEvent
}

func (o *capturingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func writeCatalogCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const sampleCatalog = "level,subject,name,duration\n" +
	"basic,English,Target 1900,10\n" +
	"Tier2,English,Reading Drill,\n" +
	"tier2,Math,Blue Chart,lots\n" +
	",Math,Nameless,3\n"

func TestImportTextbooks_CreatesAndReports(t *testing.T) {
	r := setupRepos(t)
	obs := &capturingObserver{}
	svc := NewImportService(r.uow, obs)
	ctx := context.Background()

	res, err := svc.ImportTextbooks(ctx, writeCatalogCSV(t, sampleCatalog), "")
	require.NoError(t, err)

	assert.Equal(t, 4, res.TotalProcessed)
	assert.Equal(t, 3, res.Created)
	assert.Zero(t, res.Updated)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 5, res.Skipped[0].Line)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 4, res.Warnings[0].Line)

	books, err := r.textbooks.List(ctx, repository.TextbookFilter{Subject: "English"})
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, domain.LevelBasic, books[0].Level)
	assert.Equal(t, domain.LevelTier2, books[1].Level, "levels are lower-cased")
	assert.Nil(t, books[1].Duration, "blank duration stays absent")

	math, err := r.textbooks.List(ctx, repository.TextbookFilter{Subject: "Math"})
	require.NoError(t, err)
	require.Len(t, math, 1)
	require.NotNil(t, math[0].Duration)
	assert.Zero(t, *math[0].Duration)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "import-textbooks", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 3, obs.events[0].Fields["created"])
}

func TestImportTextbooks_ReimportUpdatesDuration(t *testing.T) {
	r := setupRepos(t)
	svc := NewImportService(r.uow)
	ctx := context.Background()

	_, err := svc.ImportTextbooks(ctx, writeCatalogCSV(t, "level,subject,name,duration\nbasic,English,Target 1900,10\n"), "")
	require.NoError(t, err)
	before, err := r.textbooks.List(ctx, repository.TextbookFilter{})
	require.NoError(t, err)
	require.Len(t, before, 1)

	res, err := svc.ImportTextbooks(ctx, writeCatalogCSV(t, "level,subject,name,duration\nbasic,English,Target 1900,14\n"), "")
	require.NoError(t, err)
	assert.Zero(t, res.Created)
	assert.Equal(t, 1, res.Updated)

	after, err := r.textbooks.GetByID(ctx, before[0].ID)
	require.NoError(t, err)
	require.NotNil(t, after.Duration)
	assert.Equal(t, 14.0, *after.Duration)
}

func TestImportTextbooks_RollbackOnWriteFailure(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	// Exec #1 = first insert, #2 = second insert.
	failUoW := &testutil.FailOnNthExecUoW{DB: r.db, FailOn: 2, Err: errors.New("injected insert failure")}
	obs := &capturingObserver{}
	svc := NewImportService(failUoW, obs)

	_, err := svc.ImportTextbooks(ctx, writeCatalogCSV(t, sampleCatalog), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected insert failure")

	books, err := r.textbooks.List(ctx, repository.TextbookFilter{})
	require.NoError(t, err)
	assert.Empty(t, books, "no books should exist after rollback")

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestImportTextbooks_UnsupportedFile(t *testing.T) {
	r := setupRepos(t)
	svc := NewImportService(r.uow)

	_, err := svc.ImportTextbooks(context.Background(), filepath.Join(t.TempDir(), "catalog.json"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog format")
}
