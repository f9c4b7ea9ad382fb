package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/pkg/logger"
	"go.uber.org/zap"
)

// Response is the uniform JSON envelope for every API reply.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Code: 0, Message: "ok", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Code: 0, Message: "ok", Data: data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: msg})
}

func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{Code: http.StatusUnauthorized, Message: msg})
}

func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, Response{Code: http.StatusForbidden, Message: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Message: msg})
}

func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, Response{Code: http.StatusConflict, Message: msg})
}

func TooManyRequests(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Response{Code: http.StatusTooManyRequests, Message: msg})
}

// InternalError logs the cause and hides it from the client.
func InternalError(c *gin.Context, err error) {
	logger.Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Message: "internal server error"})
}
