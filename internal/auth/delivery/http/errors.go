package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskflow/internal/auth"
	pkgErrors "taskflow/pkg/errors"
	"taskflow/pkg/response"
)

// writeError reports a use-case error. Form errors carry their field map.
func (h *handler) writeError(c *gin.Context, err error) {
	var vErr *auth.ValidationError
	if errors.As(err, &vErr) {
		response.ValidationError(c, "invalid form", vErr.Fields)
		return
	}
	response.Error(c, h.mapError(err))
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrRateLimited):
		return pkgErrors.ErrTooManyRequests
	case errors.Is(err, auth.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(401, "session not found")
	default:
		if _, ok := pkgErrors.AsHTTPError(err); ok {
			return err
		}
		return pkgErrors.ErrInternalServerError
	}
}
