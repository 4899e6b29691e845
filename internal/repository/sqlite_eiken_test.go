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

func TestEikenRepo_UpsertPerGrade(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := testutil.NewTestStudent("Aiko")
	testutil.InsertStudent(t, database, s)
	ctx := context.Background()
	repo := NewSQLiteEikenRepo(database, nil)

	first := &domain.EikenResult{StudentID: s.ID, Grade: "2", CSEScore: ptr(1900), Result: "passed"}
	require.NoError(t, repo.Upsert(ctx, first))
	pre1 := &domain.EikenResult{StudentID: s.ID, Grade: "pre1", ExamDate: testutil.DatePtr(2025, time.October, 5)}
	require.NoError(t, repo.Upsert(ctx, pre1))
	pre2 := &domain.EikenResult{StudentID: s.ID, Grade: "pre2", CSEScore: ptr(1750)}
	require.NoError(t, repo.Upsert(ctx, pre2))

	again := &domain.EikenResult{StudentID: s.ID, Grade: "2", CSEScore: ptr(2050), Result: "passed"}
	require.NoError(t, repo.Upsert(ctx, again))
	assert.Equal(t, first.ID, again.ID, "same grade updates the stored row")

	list, err := repo.ListByStudent(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []domain.EikenGrade{"pre1", "2", "pre2"}, []domain.EikenGrade{list[0].Grade, list[1].Grade, list[2].Grade})
	require.NotNil(t, list[1].CSEScore)
	assert.Equal(t, 2050, *list[1].CSEScore)
	assert.Nil(t, list[0].CSEScore)
	require.NotNil(t, list[0].ExamDate)

	require.NoError(t, repo.Delete(ctx, pre2.ID))
	_, err = repo.GetByID(ctx, pre2.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, pre2.ID), ErrNotFound)
}
