package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/microblog/internal/model"
)

func TestTweetByAuthorsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tweets := NewTweetRepository(db)
	ctx := context.Background()

	author := seedUser(t, users, "author@example.com")

	older, err := tweets.Create(ctx, author.ID, "older")
	require.NoError(t, err)
	newer, err := tweets.Create(ctx, author.ID, "newer")
	require.NoError(t, err)
	// force distinct timestamps regardless of clock resolution
	require.NoError(t, db.Model(&model.Tweet{}).Where("id = ?", newer.ID).
		Update("updated_at", older.UpdatedAt.Add(time.Second)).Error)

	items, err := tweets.ByAuthors(ctx, []string{author.ID})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Body)
	assert.Equal(t, "older", items[1].Body)
}

func TestTweetByAuthorsTieKeepsInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tweets := NewTweetRepository(db)
	ctx := context.Background()

	author := seedUser(t, users, "author@example.com")

	first, err := tweets.Create(ctx, author.ID, "first")
	require.NoError(t, err)
	second, err := tweets.Create(ctx, author.ID, "second")
	require.NoError(t, err)
	// equal last-modified stamps: only the insertion score orders them
	require.NoError(t, db.Model(&model.Tweet{}).Where("id = ?", second.ID).
		Update("updated_at", first.UpdatedAt).Error)

	items, err := tweets.ByAuthors(ctx, []string{author.ID})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Body)
	assert.Equal(t, "second", items[1].Body)
}

func TestTweetByAuthorsJoinsPublicProfile(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tweets := NewTweetRepository(db)
	ctx := context.Background()

	author := seedUser(t, users, "author@example.com")
	_, err := tweets.Create(ctx, author.ID, "hello world")
	require.NoError(t, err)

	items, err := tweets.ByAuthors(ctx, []string{author.ID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "author@example.com", items[0].Email)
	assert.Equal(t, author.ImageURL, items[0].ImageURL)
	assert.Equal(t, author.ID, items[0].UserID)
}

func TestTweetByAuthorsEmptySet(t *testing.T) {
	db := setupTestDB(t)
	tweets := NewTweetRepository(db)

	items, err := tweets.ByAuthors(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTweetDeleteOwned(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tweets := NewTweetRepository(db)
	ctx := context.Background()

	owner := seedUser(t, users, "owner@example.com")
	other := seedUser(t, users, "other@example.com")
	tw, err := tweets.Create(ctx, owner.ID, "mine")
	require.NoError(t, err)

	// not the owner: no deletion happens
	deleted, err := tweets.DeleteOwned(ctx, tw.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	exists, err := tweets.Exists(ctx, tw.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err = tweets.DeleteOwned(ctx, tw.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	exists, err = tweets.Exists(ctx, tw.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTweetGetByID(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	tweets := NewTweetRepository(db)
	ctx := context.Background()

	author := seedUser(t, users, "author@example.com")
	tw, err := tweets.Create(ctx, author.ID, "hello")
	require.NoError(t, err)

	item, err := tweets.GetByID(ctx, tw.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", item.Body)
	assert.Equal(t, "author@example.com", item.Email)

	_, err = tweets.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}
