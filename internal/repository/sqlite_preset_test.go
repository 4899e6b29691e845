package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetRepo_Lifecycle(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLitePresetRepo(database)

	starter := &domain.BulkPreset{Subject: "English", Name: "Starter", Books: []string{"Target 1900", "Next Stage"}}
	require.NoError(t, repo.Create(ctx, starter))
	math := &domain.BulkPreset{Subject: "Math", Name: "Core", Books: []string{"Blue Chart"}}
	require.NoError(t, repo.Create(ctx, math))
	empty := &domain.BulkPreset{Subject: "English", Name: "Advanced"}
	require.NoError(t, repo.Create(ctx, empty))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Advanced", all[0].Name)
	assert.Empty(t, all[0].Books)
	assert.Equal(t, []string{"Target 1900", "Next Stage"}, all[1].Books, "books keep insertion order")

	english, err := repo.List(ctx, "English")
	require.NoError(t, err)
	assert.Len(t, english, 2)

	got, err := repo.GetByName(ctx, "Math", "Core")
	require.NoError(t, err)
	assert.Equal(t, math.ID, got.ID)
	_, err = repo.GetByName(ctx, "Math", "Missing")
	assert.ErrorIs(t, err, ErrNotFound)

	starter.Name = "Starter Plus"
	starter.Books = []string{"Next Stage"}
	require.NoError(t, repo.Update(ctx, starter))
	got, err = repo.GetByID(ctx, starter.ID)
	require.NoError(t, err)
	assert.Equal(t, "Starter Plus", got.Name)
	assert.Equal(t, []string{"Next Stage"}, got.Books)

	dup := &domain.BulkPreset{Subject: "Math", Name: "Core"}
	assert.Error(t, repo.Create(ctx, dup), "subject and name are unique")

	require.NoError(t, repo.Delete(ctx, starter.ID))
	_, err = repo.GetByID(ctx, starter.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	var books int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM bulk_preset_books WHERE preset_id = ?`, starter.ID).Scan(&books))
	assert.Zero(t, books)
}
