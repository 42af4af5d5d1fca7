package auth

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrRateLimited     = errors.New("too many login attempts")
)

// Field names used as keys of FieldErrors.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// FieldErrors maps a form field to its message.
type FieldErrors map[string]string

// ValidationError is returned when the form does not pass validation.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}
