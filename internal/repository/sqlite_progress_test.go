package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressTestSetup(t *testing.T) (*SQLiteProgressRepo, *SQLiteTextbookRepo, *domain.Student) {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := testutil.NewTestStudent("Aiko", testutil.WithDeviation(55))
	testutil.InsertStudent(t, database, s)
	return NewSQLiteProgressRepo(database), NewSQLiteTextbookRepo(database), s
}

func TestProgressRepo_FetchResolvesDuration(t *testing.T) {
	repo, books, s := progressTestSetup(t)
	ctx := context.Background()

	require.NoError(t, books.Create(ctx, &domain.MasterTextbook{Subject: "Math", Level: domain.LevelTier2, Name: "Blue Chart", Duration: hours(40)}))
	require.NoError(t, books.Create(ctx, &domain.MasterTextbook{Subject: "Math", Level: domain.LevelBasic, Name: "Basics", Duration: hours(10)}))

	// catalog duration
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProgress(s.ID, "Math", domain.LevelTier2, "Blue Chart", testutil.WithUnits(3, 10))))
	// override beats catalog
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProgress(s.ID, "Math", domain.LevelBasic, "Basics", testutil.WithOverride(6))))
	// no catalog entry, no override
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProgress(s.ID, "English", domain.LevelBasic, "Tutor Handout")))

	items, err := repo.FetchProgress(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	// ordered by subject, then level order
	assert.Equal(t, "Tutor Handout", items[0].ItemName)
	assert.Equal(t, 0.0, items[0].BaseDuration)
	assert.Nil(t, items[0].Duration)

	assert.Equal(t, "Basics", items[1].ItemName)
	assert.Equal(t, 6.0, items[1].BaseDuration)
	require.NotNil(t, items[1].Duration)

	assert.Equal(t, "Blue Chart", items[2].ItemName)
	assert.Equal(t, 40.0, items[2].BaseDuration)
	assert.Equal(t, 3, items[2].CompletedUnits)
	assert.Equal(t, 10, items[2].TotalUnits)
	assert.True(t, items[2].IsPlanned)
}

func TestProgressRepo_NullUnitsDefault(t *testing.T) {
	repo, _, s := progressTestSetup(t)
	ctx := context.Background()

	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO progress (student_id, subject, level, book_name, completed_units, total_units) VALUES (?, 'Math', 'tier2', 'Legacy', NULL, NULL)`, s.ID)
	require.NoError(t, err)

	items, err := repo.FetchProgress(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, items[0].CompletedUnits)
	assert.Equal(t, 1, items[0].TotalUnits)
}

func TestProgressRepo_UpsertKeepsOverrideWhenNil(t *testing.T) {
	repo, _, s := progressTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProgress(s.ID, "Math", domain.LevelTier3, "Focus Gold", testutil.WithOverride(50))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProgress(s.ID, "Math", domain.LevelTier3, "Focus Gold", testutil.WithUnits(5, 8))))

	got, err := repo.Get(ctx, s.ID, "Math", domain.LevelTier3, "Focus Gold")
	require.NoError(t, err)
	require.NotNil(t, got.Duration)
	assert.Equal(t, 50.0, *got.Duration)
	assert.Equal(t, 5, got.CompletedUnits)
	assert.Equal(t, 8, got.TotalUnits)

	items, err := repo.FetchProgress(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "upsert must not duplicate the natural key")
}

func TestProgressRepo_GetAndDelete(t *testing.T) {
	repo, _, s := progressTestSetup(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, s.ID, "Math", domain.LevelTier3, "Missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestProgress(s.ID, "Math", domain.LevelTier3, "Focus Gold")))
	got, err := repo.Get(ctx, s.ID, "Math", domain.LevelTier3, "Focus Gold")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, got.ID))
	assert.ErrorIs(t, repo.Delete(ctx, got.ID), ErrNotFound)
}

func TestProgressRepo_ListCompletedLevels(t *testing.T) {
	repo, _, aiko := progressTestSetup(t)
	ctx := context.Background()

	ren := testutil.NewTestStudent("Ren", testutil.WithSchool("Ikebukuro"))
	testutil.InsertStudent(t, repo.db, ren)

	for _, p := range []*domain.ProgressItem{
		testutil.NewTestProgress(aiko.ID, "English", domain.LevelTier2, "Book A", testutil.Done()),
		testutil.NewTestProgress(aiko.ID, "English", domain.LevelTier2, "Book B", testutil.Done()),
		testutil.NewTestProgress(aiko.ID, "English", domain.LevelTier3, "Book C"), // not done
		testutil.NewTestProgress(aiko.ID, "English", domain.LevelBasic, "Book D", testutil.Done()),
		testutil.NewTestProgress(ren.ID, "English", domain.LevelTier2, "Book A", testutil.Done()),
	} {
		require.NoError(t, repo.Upsert(ctx, p))
	}

	all, err := repo.ListCompletedLevels(ctx, StudentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2, "one row per student, subject and level")

	shibuya, err := repo.ListCompletedLevels(ctx, StudentFilter{School: "Shibuya"})
	require.NoError(t, err)
	require.Len(t, shibuya, 1)
	assert.Equal(t, aiko.ID, shibuya[0].StudentID)
	assert.Equal(t, domain.LevelTier2, shibuya[0].Level)
}
