package http

import (
	"errors"

	"taskflow/internal/task"
	pkgErrors "taskflow/pkg/errors"
)

var (
	errNoSession  = pkgErrors.NewHTTPError(401, "session required")
	errIDRequired = pkgErrors.NewHTTPError(400, "id is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrNotPermutation):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, task.ErrInvalidSlotGoal):
		return pkgErrors.NewHTTPError(400, task.ErrInvalidSlotGoal.Error())
	case errors.Is(err, task.ErrPersist):
		return pkgErrors.NewHTTPError(500, "failed to save tasks")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
