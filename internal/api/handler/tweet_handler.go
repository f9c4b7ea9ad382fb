package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/pkg/response"
)

type createTweetRequest struct {
	Body string `json:"body" binding:"required"`
}

// Timeline returns the caller's home feed.
// @Summary Home timeline
// @Tags tweets
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 401 {object} response.Response
// @Router /api/v1/timeline [get]
func (h *Handler) Timeline(c *gin.Context) {
	items, err := h.feedSvc.Home(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"list": items})
}

// ListTweets returns every tweet, newest first.
// @Summary Explore all tweets
// @Tags tweets
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/tweets [get]
func (h *Handler) ListTweets(c *gin.Context) {
	items, err := h.tweetSvc.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"list": items})
}

// CreateTweet posts a tweet authored by the caller.
// @Summary Post a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param request body createTweetRequest true "tweet body"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/tweets [post]
func (h *Handler) CreateTweet(c *gin.Context) {
	var req createTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	tweet, err := h.tweetSvc.Create(c.Request.Context(), middleware.CallerID(c), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, tweet)
}

// GetTweet returns one tweet with its author's public profile fields.
// @Summary Get a tweet
// @Tags tweets
// @Produce json
// @Param tweet_id path string true "tweet id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{tweet_id} [get]
func (h *Handler) GetTweet(c *gin.Context) {
	item, err := h.tweetSvc.Get(c.Request.Context(), c.Param("tweet_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, item)
}

// DeleteTweet removes a tweet the caller authored.
// @Summary Delete an owned tweet
// @Tags tweets
// @Produce json
// @Param tweet_id path string true "tweet id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{tweet_id} [delete]
func (h *Handler) DeleteTweet(c *gin.Context) {
	if err := h.tweetSvc.Delete(c.Request.Context(), c.Param("tweet_id"), middleware.CallerID(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
