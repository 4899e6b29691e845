package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndLookup(t *testing.T) {
	repo := NewSQLiteUserRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	admin := testutil.NewTestUser("principal", testutil.AsAdmin())
	require.NoError(t, repo.Create(ctx, admin))

	byName, err := repo.GetByUsername(ctx, "principal")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, byName.ID)
	assert.Equal(t, domain.RoleAdmin, byName.Role)

	byID, err := repo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "principal", byID.Username)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_UsernameUnique(t *testing.T) {
	repo := NewSQLiteUserRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestUser("tanaka")))
	assert.Error(t, repo.Create(ctx, testutil.NewTestUser("tanaka")))
}

func TestUserRepo_RoleConstraint(t *testing.T) {
	repo := NewSQLiteUserRepo(testutil.NewTestDB(t))
	u := testutil.NewTestUser("guest")
	u.Role = "guest"
	assert.Error(t, repo.Create(context.Background(), u))
}

func TestUserRepo_ListBySchoolAndDelete(t *testing.T) {
	repo := NewSQLiteUserRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	a := testutil.NewTestUser("b-user")
	b := testutil.NewTestUser("a-user")
	c := testutil.NewTestUser("c-user", testutil.WithUserSchool("Ikebukuro"))
	for _, u := range []*domain.User{a, b, c} {
		require.NoError(t, repo.Create(ctx, u))
	}

	shibuya, err := repo.List(ctx, "Shibuya")
	require.NoError(t, err)
	require.Len(t, shibuya, 2)
	assert.Equal(t, "a-user", shibuya[0].Username)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.Delete(ctx, c.ID))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID), ErrNotFound)
}
