package service

import (
	"context"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// FeedService composes timelines. Every call re-reads the follow graph and
// the tweet store; there is no cached or precomputed timeline.
type FeedService interface {
	// Home returns the viewer's feed: their own tweets plus the tweets of
	// everyone they follow, newest first. An empty feed is a valid result.
	Home(ctx context.Context, viewerID string) ([]model.TweetItem, error)
	// Profile returns a single user's tweets regardless of who is viewing.
	Profile(ctx context.Context, userID string) ([]model.TweetItem, error)
}

type feedService struct {
	followRepo repository.FollowRepository
	tweetRepo  repository.TweetRepository
}

func NewFeedService(followRepo repository.FollowRepository, tweetRepo repository.TweetRepository) FeedService {
	return &feedService{followRepo: followRepo, tweetRepo: tweetRepo}
}

func (s *feedService) Home(ctx context.Context, viewerID string) ([]model.TweetItem, error) {
	following, err := s.followRepo.FollowingOf(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	authors := append([]string{viewerID}, following...)
	return s.tweetRepo.ByAuthors(ctx, authors)
}

func (s *feedService) Profile(ctx context.Context, userID string) ([]model.TweetItem, error) {
	return s.tweetRepo.ByAuthors(ctx, []string{userID})
}
