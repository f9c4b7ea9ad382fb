package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/microblog/config"
	"github.com/d60-Lab/microblog/internal/api/handler"
	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
)

// NewRouter wires the gin engine: recovery, tracing, compression, rate
// limiting, then the versioned API routes.
func NewRouter(cfg *config.Config, h *handler.Handler, sessions service.SessionService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(otelgin.Middleware("microblog"))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", middleware.Auth(sessions), h.Logout)
			auth.GET("/me", middleware.Auth(sessions), h.Me)
		}

		authed := v1.Group("", middleware.Auth(sessions))
		{
			authed.GET("/timeline", h.Timeline)

			authed.GET("/tweets", h.ListTweets)
			authed.POST("/tweets", h.CreateTweet)
			authed.GET("/tweets/:tweet_id", h.GetTweet)
			authed.DELETE("/tweets/:tweet_id", h.DeleteTweet)

			authed.GET("/users", h.ListUsers)
			authed.GET("/users/:user_id", h.GetUser)
			authed.GET("/users/:user_id/tweets", h.GetUserTweets)
			authed.GET("/users/:user_id/following", h.ListFollowing)
			authed.GET("/users/:user_id/followers", h.ListFollowers)
			authed.POST("/users/:user_id/follow", h.ToggleFollow)

			authed.POST("/relations/follow", h.Follow)
			authed.POST("/relations/unfollow", h.Unfollow)
		}
	}
	return r
}
