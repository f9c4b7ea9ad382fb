package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/pkg/response"
)

type followRequest struct {
	ToUserID string `json:"to_user_id" binding:"required"`
}

// Follow creates the follow edge from the caller to the target user.
// @Summary Follow a user
// @Tags relations
// @Accept json
// @Produce json
// @Param request body followRequest true "target user"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/relations/follow [post]
func (h *Handler) Follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.relSvc.Follow(c.Request.Context(), middleware.CallerID(c), req.ToUserID); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

// Unfollow removes the follow edge from the caller to the target user.
// @Summary Unfollow a user
// @Tags relations
// @Accept json
// @Produce json
// @Param request body followRequest true "target user"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/relations/unfollow [post]
func (h *Handler) Unfollow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.relSvc.Unfollow(c.Request.Context(), middleware.CallerID(c), req.ToUserID); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

// ToggleFollow flips the caller's follow state on the profile user, the way
// the profile page's single follow/unfollow button behaves.
// @Summary Toggle follow on a profile
// @Tags relations
// @Produce json
// @Param user_id path string true "profile user id"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/users/{user_id}/follow [post]
func (h *Handler) ToggleFollow(c *gin.Context) {
	following, err := h.relSvc.Toggle(c.Request.Context(), middleware.CallerID(c), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"following": following})
}

// ListFollowing returns the ids a user follows.
// @Summary List followed users
// @Tags relations
// @Produce json
// @Param user_id path string true "user id"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{user_id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	list, err := h.relSvc.Following(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list})
}

// ListFollowers returns the ids following a user.
// @Summary List followers
// @Tags relations
// @Produce json
// @Param user_id path string true "user id"
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{user_id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	list, err := h.relSvc.Followers(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list})
}
