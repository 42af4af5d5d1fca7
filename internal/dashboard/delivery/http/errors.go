package http

import (
	"errors"

	"taskflow/internal/dashboard"
	"taskflow/internal/task"
	pkgErrors "taskflow/pkg/errors"
)

var errNoSession = pkgErrors.NewHTTPError(401, "session required")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrInvalidDailyCount):
		return pkgErrors.NewHTTPError(400, dashboard.ErrInvalidDailyCount.Error())
	case errors.Is(err, task.ErrPersist):
		return pkgErrors.NewHTTPError(500, "failed to save tasks")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
