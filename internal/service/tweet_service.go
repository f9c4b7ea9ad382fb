package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// TweetService owns tweet lifecycle: create, fetch, owner-only delete.
type TweetService interface {
	Create(ctx context.Context, authorID, body string) (*model.Tweet, error)
	Get(ctx context.Context, tweetID string) (*model.TweetItem, error)
	// Delete removes the tweet when requesterID is its author. A tweet that
	// does not exist yields ErrNotFound, one owned by someone else ErrForbidden.
	Delete(ctx context.Context, tweetID, requesterID string) error
	All(ctx context.Context) ([]model.TweetItem, error)
}

type tweetService struct {
	tweetRepo repository.TweetRepository
}

func NewTweetService(tweetRepo repository.TweetRepository) TweetService {
	return &tweetService{tweetRepo: tweetRepo}
}

func (s *tweetService) Create(ctx context.Context, authorID, body string) (*model.Tweet, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("body is required: %w", model.ErrValidation)
	}
	return s.tweetRepo.Create(ctx, authorID, body)
}

func (s *tweetService) Get(ctx context.Context, tweetID string) (*model.TweetItem, error) {
	return s.tweetRepo.GetByID(ctx, tweetID)
}

func (s *tweetService) Delete(ctx context.Context, tweetID, requesterID string) error {
	deleted, err := s.tweetRepo.DeleteOwned(ctx, tweetID, requesterID)
	if err != nil {
		return err
	}
	if deleted {
		return nil
	}
	// The conditional delete touched nothing; look once more to tell the
	// caller whether the tweet is missing or simply not theirs.
	exists, err := s.tweetRepo.Exists(ctx, tweetID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("tweet %s: %w", tweetID, model.ErrNotFound)
	}
	return fmt.Errorf("tweet %s is not owned by %s: %w", tweetID, requesterID, model.ErrForbidden)
}

func (s *tweetService) All(ctx context.Context) ([]model.TweetItem, error) {
	return s.tweetRepo.All(ctx)
}
