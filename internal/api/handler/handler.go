package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// Handler bundles the services behind the HTTP API.
type Handler struct {
	identity service.IdentityService
	sessions service.SessionService
	relSvc   service.RelationshipService
	tweetSvc service.TweetService
	feedSvc  service.FeedService
}

func New(
	identity service.IdentityService,
	sessions service.SessionService,
	relSvc service.RelationshipService,
	tweetSvc service.TweetService,
	feedSvc service.FeedService,
) *Handler {
	return &Handler{
		identity: identity,
		sessions: sessions,
		relSvc:   relSvc,
		tweetSvc: tweetSvc,
		feedSvc:  feedSvc,
	}
}

// bindError turns gin binding failures into field-level messages instead of
// validator's struct-path dump.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q validation", strings.ToLower(fe.Field()), fe.Tag()))
		}
		response.BadRequest(c, strings.Join(msgs, "; "))
		return
	}
	response.BadRequest(c, err.Error())
}

// respondError maps domain error kinds onto wire status codes. Anything not
// recognized is a 500 and gets logged with its cause.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		response.BadRequest(c, err.Error())
	case errors.Is(err, model.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, model.ErrConflict):
		response.Conflict(c, err.Error())
	case errors.Is(err, model.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, model.ErrUnauthorized):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
