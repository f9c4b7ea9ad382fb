package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

// TweetRepository stores tweets and answers the joined author projections
// that feeds are built from.
type TweetRepository interface {
	Create(ctx context.Context, authorID, body string) (*model.Tweet, error)
	// DeleteOwned deletes the tweet only when requesterID is its author; the
	// ownership check and the delete are a single conditional statement, so
	// there is no window between check and mutation.
	DeleteOwned(ctx context.Context, tweetID, requesterID string) (bool, error)
	GetByID(ctx context.Context, tweetID string) (*model.TweetItem, error)
	Exists(ctx context.Context, tweetID string) (bool, error)
	ByAuthors(ctx context.Context, authorIDs []string) ([]model.TweetItem, error)
	All(ctx context.Context) ([]model.TweetItem, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository { return &tweetRepository{db: db} }

const tweetItemSelect = "tweets.id, tweets.user_id, tweets.body, tweets.updated_at, users.email, users.image_url"

// Newest first; equal timestamps keep insertion order via the score column.
const tweetItemOrder = "tweets.updated_at DESC, tweets.score ASC"

func (r *tweetRepository) Create(ctx context.Context, authorID, body string) (*model.Tweet, error) {
	now := time.Now()
	t := &model.Tweet{
		ID:        uuid.New().String(),
		UserID:    authorID,
		Body:      body,
		Score:     now.UnixNano(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tweetRepository) DeleteOwned(ctx context.Context, tweetID, requesterID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tweetID, requesterID).
		Delete(&model.Tweet{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *tweetRepository) GetByID(ctx context.Context, tweetID string) (*model.TweetItem, error) {
	var item model.TweetItem
	err := r.db.WithContext(ctx).
		Table("tweets").
		Select(tweetItemSelect).
		Joins("JOIN users ON users.id = tweets.user_id").
		Where("tweets.id = ?", tweetID).
		Take(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tweet %s: %w", tweetID, model.ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

func (r *tweetRepository) Exists(ctx context.Context, tweetID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Tweet{}).
		Where("id = ?", tweetID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *tweetRepository) ByAuthors(ctx context.Context, authorIDs []string) ([]model.TweetItem, error) {
	items := []model.TweetItem{}
	if len(authorIDs) == 0 {
		return items, nil
	}
	err := r.db.WithContext(ctx).
		Table("tweets").
		Select(tweetItemSelect).
		Joins("JOIN users ON users.id = tweets.user_id").
		Where("tweets.user_id IN ?", authorIDs).
		Order(tweetItemOrder).
		Scan(&items).Error
	return items, err
}

func (r *tweetRepository) All(ctx context.Context) ([]model.TweetItem, error) {
	items := []model.TweetItem{}
	err := r.db.WithContext(ctx).
		Table("tweets").
		Select(tweetItemSelect).
		Joins("JOIN users ON users.id = tweets.user_id").
		Order(tweetItemOrder).
		Scan(&items).Error
	return items, err
}
