package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/pkg/response"
)

// ListUsers returns the user directory.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.identity.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"list": users})
}

// GetUser returns a profile plus whether the caller follows it.
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Param user_id path string true "user id"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{user_id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.identity.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	following, err := h.relSvc.IsFollowing(c.Request.Context(), middleware.CallerID(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"user": user, "is_following": following})
}

// GetUserTweets returns the profile feed for one user.
// @Summary Get a user's tweets
// @Tags users
// @Produce json
// @Param user_id path string true "user id"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{user_id}/tweets [get]
func (h *Handler) GetUserTweets(c *gin.Context) {
	userID := c.Param("user_id")
	if _, err := h.identity.GetByID(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	items, err := h.feedSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"list": items})
}
