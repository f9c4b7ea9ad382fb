package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

type fixture struct {
	db         *gorm.DB
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	tweetRepo  repository.TweetRepository
	identity   IdentityService
	relSvc     RelationshipService
	tweetSvc   TweetService
	feedSvc    FeedService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Password{}, &model.Follow{}, &model.Tweet{}))

	f := &fixture{db: db}
	f.userRepo = repository.NewUserRepository(db)
	f.followRepo = repository.NewFollowRepository(db)
	f.tweetRepo = repository.NewTweetRepository(db)
	f.identity = NewIdentityService(f.userRepo)
	f.relSvc = NewRelationshipService(f.followRepo, f.userRepo)
	f.tweetSvc = NewTweetService(f.tweetRepo)
	f.feedSvc = NewFeedService(f.followRepo, f.tweetRepo)
	return f
}

func (f *fixture) register(t *testing.T, email string) *model.User {
	t.Helper()
	u, err := f.identity.Register(context.Background(), email, "", "password123")
	require.NoError(t, err)
	return u
}
