package http

import (
	"taskflow/internal/auth"
	"taskflow/internal/middleware"
	"taskflow/pkg/log"
)

type handler struct {
	l  log.Logger
	uc auth.UseCase
	mw middleware.Middleware
}

// New creates a new HTTP handler for the auth shell.
func New(l log.Logger, uc auth.UseCase, mw middleware.Middleware) *handler {
	return &handler{
		l:  l,
		uc: uc,
		mw: mw,
	}
}
