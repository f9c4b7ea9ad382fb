package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/pkg/response"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "registration info"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	user, err := h.identity.Register(c.Request.Context(), req.Email, req.ImageURL, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, user)
}

// Login authenticates and issues a session token.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	user, err := h.identity.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := h.sessions.Issue(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
	response.Success(c, gin.H{"token": token, "user": user})
}

// Logout revokes the current session.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	token := c.GetString(middleware.TokenKey)
	if err := h.sessions.Revoke(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// Me returns the authenticated user's profile.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, err := h.identity.GetByID(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, user)
}
