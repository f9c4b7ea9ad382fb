package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/model"
)

func TestFollowCreateDuplicateIsConflict(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, users, "a@example.com")
	b := seedUser(t, users, "b@example.com")

	require.NoError(t, follows.Create(ctx, a.ID, b.ID))

	err := follows.Create(ctx, a.ID, b.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestFollowReverseDirectionIsDistinct(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, users, "a@example.com")
	b := seedUser(t, users, "b@example.com")

	require.NoError(t, follows.Create(ctx, a.ID, b.ID))
	require.NoError(t, follows.Create(ctx, b.ID, a.ID))
}

func TestFollowDeleteAbsentIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, users, "a@example.com")
	b := seedUser(t, users, "b@example.com")

	err := follows.Delete(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestFollowUnfollowRestoresState(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, users, "a@example.com")
	b := seedUser(t, users, "b@example.com")

	require.NoError(t, follows.Create(ctx, a.ID, b.ID))
	ok, err := follows.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, follows.Delete(ctx, a.ID, b.ID))
	ok, err = follows.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	following, err := follows.FollowingOf(ctx, a.ID)
	require.NoError(t, err)
	assert.NotContains(t, following, b.ID)
}

func TestFollowersAndFollowing(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	follows := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, users, "a@example.com")
	b := seedUser(t, users, "b@example.com")
	c := seedUser(t, users, "c@example.com")

	require.NoError(t, follows.Create(ctx, a.ID, c.ID))
	require.NoError(t, follows.Create(ctx, b.ID, c.ID))
	require.NoError(t, follows.Create(ctx, c.ID, a.ID))

	followers, err := follows.FollowersOf(ctx, c.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, followers)

	following, err := follows.FollowingOf(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, following)

	// nobody follows b
	followers, err = follows.FollowersOf(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)
}
