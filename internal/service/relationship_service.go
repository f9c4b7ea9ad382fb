package service

import (
	"context"
	"fmt"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// RelationshipService manages the directed follow graph.
type RelationshipService interface {
	Follow(ctx context.Context, fromUserID, toUserID string) error
	Unfollow(ctx context.Context, fromUserID, toUserID string) error
	// Toggle reads the current edge state once and flips it: following becomes
	// not-following and vice versa. Returns the resulting state. Under racing
	// toggles the loser surfaces ErrConflict or ErrNotFound from the store;
	// state is never corrupted, callers may simply retry.
	Toggle(ctx context.Context, fromUserID, toUserID string) (following bool, err error)
	IsFollowing(ctx context.Context, fromUserID, toUserID string) (bool, error)
	Following(ctx context.Context, userID string) ([]string, error)
	Followers(ctx context.Context, userID string) ([]string, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo}
}

func (s *relationshipService) Follow(ctx context.Context, fromUserID, toUserID string) error {
	if fromUserID == toUserID {
		return fmt.Errorf("cannot follow self: %w", model.ErrValidation)
	}
	if _, err := s.userRepo.FindByID(ctx, toUserID); err != nil {
		return err
	}
	return s.followRepo.Create(ctx, fromUserID, toUserID)
}

func (s *relationshipService) Unfollow(ctx context.Context, fromUserID, toUserID string) error {
	return s.followRepo.Delete(ctx, fromUserID, toUserID)
}

func (s *relationshipService) Toggle(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	if fromUserID == toUserID {
		return false, fmt.Errorf("cannot follow self: %w", model.ErrValidation)
	}
	following, err := s.followRepo.Exists(ctx, fromUserID, toUserID)
	if err != nil {
		return false, err
	}
	if following {
		if err := s.followRepo.Delete(ctx, fromUserID, toUserID); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := s.userRepo.FindByID(ctx, toUserID); err != nil {
		return false, err
	}
	if err := s.followRepo.Create(ctx, fromUserID, toUserID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, fromUserID, toUserID string) (bool, error) {
	return s.followRepo.Exists(ctx, fromUserID, toUserID)
}

func (s *relationshipService) Following(ctx context.Context, userID string) ([]string, error) {
	return s.followRepo.FollowingOf(ctx, userID)
}

func (s *relationshipService) Followers(ctx context.Context, userID string) ([]string, error) {
	return s.followRepo.FollowersOf(ctx, userID)
}
