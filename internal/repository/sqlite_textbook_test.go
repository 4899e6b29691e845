package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(h float64) *float64 { return &h }

func TestTextbookRepo_ListOrdersByLevel(t *testing.T) {
	repo := NewSQLiteTextbookRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	books := []*domain.MasterTextbook{
		{Subject: "English", Level: domain.LevelTier4, Name: "Rapid Reading", Duration: hours(30)},
		{Subject: "English", Level: domain.LevelBasic, Name: "Grammar Drill", Duration: hours(20)},
		{Subject: "English", Level: domain.Level("custom"), Name: "Club Reader"},
		{Subject: "English", Level: domain.LevelTier2, Name: "Vocabulary 1900", Duration: hours(25)},
		{Subject: "Biology", Level: domain.LevelBasic, Name: "Cells"},
	}
	for _, b := range books {
		require.NoError(t, repo.Create(ctx, b))
	}

	english, err := repo.List(ctx, TextbookFilter{Subject: "English"})
	require.NoError(t, err)
	require.Len(t, english, 4)
	assert.Equal(t, "Grammar Drill", english[0].Name)
	assert.Equal(t, "Vocabulary 1900", english[1].Name)
	assert.Equal(t, "Rapid Reading", english[2].Name)
	assert.Equal(t, "Club Reader", english[3].Name, "unknown levels sort last")
	assert.Nil(t, english[3].Duration)

	search, err := repo.List(ctx, TextbookFilter{Search: "Read"})
	require.NoError(t, err)
	assert.Len(t, search, 2)

	subjects, err := repo.ListSubjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Biology", "English"}, subjects)
}

func TestTextbookRepo_UniqueAndUpsert(t *testing.T) {
	repo := NewSQLiteTextbookRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	b := &domain.MasterTextbook{Subject: "Math", Level: domain.LevelTier2, Name: "Blue Chart", Duration: hours(40)}
	require.NoError(t, repo.Create(ctx, b))

	dup := &domain.MasterTextbook{Subject: "Math", Level: domain.LevelTier2, Name: "Blue Chart"}
	assert.Error(t, repo.Create(ctx, dup))

	created, err := repo.Upsert(ctx, &domain.MasterTextbook{Subject: "Math", Level: domain.LevelTier2, Name: "Blue Chart", Duration: hours(45)})
	require.NoError(t, err)
	assert.False(t, created)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 45.0, *got.Duration)

	created, err = repo.Upsert(ctx, &domain.MasterTextbook{Subject: "Math", Level: domain.LevelTier3, Name: "Blue Chart"})
	require.NoError(t, err)
	assert.True(t, created)
}

func TestTextbookRepo_UpdateDelete(t *testing.T) {
	repo := NewSQLiteTextbookRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	b := &domain.MasterTextbook{Subject: "Physics", Level: domain.LevelBasic, Name: "Mechanics"}
	require.NoError(t, repo.Create(ctx, b))

	b.Duration = hours(12.5)
	b.Level = domain.LevelTier2
	require.NoError(t, repo.Update(ctx, b))
	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LevelTier2, got.Level)
	assert.Equal(t, 12.5, *got.Duration)

	require.NoError(t, repo.Delete(ctx, b.ID))
	_, err = repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, b), ErrNotFound)
}
