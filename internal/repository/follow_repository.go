package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

// FollowRepository is the social graph store: directed follow edges with a
// unique (follower_id, following_id) pair.
type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID string) error
	Delete(ctx context.Context, followerID, followingID string) error
	Exists(ctx context.Context, followerID, followingID string) (bool, error)
	FollowersOf(ctx context.Context, userID string) ([]string, error)
	FollowingOf(ctx context.Context, userID string) ([]string, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

// Create inserts the edge. A duplicate pair is rejected by the unique index
// and surfaces as ErrConflict; racing duplicate follows lose the same way.
func (r *followRepository) Create(ctx context.Context, followerID, followingID string) error {
	f := &model.Follow{ID: uuid.New().String(), FollowerID: followerID, FollowingID: followingID}
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("follow %s -> %s: %w", followerID, followingID, model.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID string) error {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("follow %s -> %s: %w", followerID, followingID, model.ErrNotFound)
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *followRepository) FollowersOf(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *followRepository) FollowingOf(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}
