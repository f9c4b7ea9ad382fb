package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/microblog/config"
	_ "github.com/d60-Lab/microblog/docs"
	"github.com/d60-Lab/microblog/internal/api"
	"github.com/d60-Lab/microblog/internal/api/handler"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/database"
	"github.com/d60-Lab/microblog/pkg/logger"
	"github.com/d60-Lab/microblog/pkg/tracing"
)

// @title Microblog API
// @version 1.0
// @description A minimal social feed: follow users, post tweets, read timelines.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Server.Mode); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Fatal("init sentry", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	shutdownTracing, err := tracing.Init(context.Background(), cfg)
	if err != nil {
		logger.Fatal("init tracing", zap.Error(err))
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("init database", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("connect redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tweetRepo := repository.NewTweetRepository(db)

	identity := service.NewIdentityService(userRepo)
	sessions := service.NewSessionService(rdb, cfg.JWT.Secret, cfg.JWT.TTL)
	relSvc := service.NewRelationshipService(followRepo, userRepo)
	tweetSvc := service.NewTweetService(tweetRepo)
	feedSvc := service.NewFeedService(followRepo, tweetRepo)

	h := handler.New(identity, sessions, relSvc, tweetSvc, feedSvc)
	router := api.NewRouter(cfg, h, sessions)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracing shutdown", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		logger.Error("redis close", zap.Error(err))
	}
}
