package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

const (
	// UserIDKey is the gin context key holding the authenticated caller id.
	UserIDKey = "auth.user_id"
	// TokenKey holds the raw session token, needed by logout.
	TokenKey = "auth.token"

	// SessionCookie is the fallback token carrier for browser clients.
	SessionCookie = "session"
)

// Auth validates the bearer token (header first, cookie fallback) and stores
// the caller's user id on the context. Requests without a live session stop
// here with 401.
func Auth(sessions service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c, "missing session token")
			return
		}
		userID, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "invalid session token")
			return
		}
		c.Set(UserIDKey, userID)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// CallerID returns the authenticated user id set by Auth.
func CallerID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return token
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
