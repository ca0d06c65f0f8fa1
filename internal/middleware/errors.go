package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/todo-api/internal/errors"
	"github.com/yukikurage/todo-api/internal/services"
)

// RespondError writes the response for an error returned by the services.
func RespondError(c *gin.Context, err error) {
	var quotaErr *services.QuotaExceededError

	switch {
	case errors.Is(err, services.ErrUsernameRequired):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeMissingField, err.Error())
	case errors.Is(err, services.ErrUnknownUsername),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTodoNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeAlreadyExists, "Username already exists")
	case errors.As(err, &quotaErr):
		apierrors.ForbiddenWithDetails(c, apierrors.ErrCodeQuotaExceeded, quotaErr.Error(), gin.H{
			"count": quotaErr.Count,
			"limit": quotaErr.Limit,
		})
	case errors.Is(err, services.ErrInvalidTodoID):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeInvalidFormat, err.Error())
	case errors.Is(err, services.ErrAlreadyPro):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeInvalidOperation, err.Error())
	case errors.Is(err, services.ErrNameRequired),
		errors.Is(err, services.ErrTitleRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}

// abortWithError responds with err and stops the handler chain.
func abortWithError(c *gin.Context, err error) {
	RespondError(c, err)
	c.Abort()
}

// abortMissingContext is used when a guard runs without the guard it depends on.
func abortMissingContext(c *gin.Context, key string) {
	c.JSON(http.StatusInternalServerError, apierrors.NewAPIError(apierrors.ErrCodeInternalError, key+" not found in context"))
	c.Abort()
}
