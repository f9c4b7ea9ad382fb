package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/model"
)

func TestFollowTwiceIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.register(t, "a@example.com")
	b := f.register(t, "b@example.com")

	require.NoError(t, f.relSvc.Follow(ctx, a.ID, b.ID))
	err := f.relSvc.Follow(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestFollowSelfRejected(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "a@example.com")

	err := f.relSvc.Follow(context.Background(), a.ID, a.ID)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestFollowUnknownTargetIsNotFound(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "a@example.com")

	err := f.relSvc.Follow(context.Background(), a.ID, "ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUnfollowRestoresNotFollowing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.register(t, "a@example.com")
	b := f.register(t, "b@example.com")

	require.NoError(t, f.relSvc.Follow(ctx, a.ID, b.ID))
	require.NoError(t, f.relSvc.Unfollow(ctx, a.ID, b.ID))

	following, err := f.relSvc.IsFollowing(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)

	list, err := f.relSvc.Following(ctx, a.ID)
	require.NoError(t, err)
	assert.NotContains(t, list, b.ID)
}

func TestToggleFlipsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.register(t, "a@example.com")
	b := f.register(t, "b@example.com")

	following, err := f.relSvc.Toggle(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = f.relSvc.Toggle(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)

	state, err := f.relSvc.IsFollowing(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, state)
}

func TestToggleSelfRejected(t *testing.T) {
	f := newFixture(t)
	a := f.register(t, "a@example.com")

	_, err := f.relSvc.Toggle(context.Background(), a.ID, a.ID)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestFollowersListsBothSides(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.register(t, "a@example.com")
	b := f.register(t, "b@example.com")
	c := f.register(t, "c@example.com")

	require.NoError(t, f.relSvc.Follow(ctx, a.ID, c.ID))
	require.NoError(t, f.relSvc.Follow(ctx, b.ID, c.ID))

	followers, err := f.relSvc.Followers(ctx, c.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, followers)
}
