package middleware

import (
	"taskflow/internal/auth"
	"taskflow/pkg/log"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

type Middleware struct {
	l            log.Logger
	authUC       auth.UseCase
	cookieConfig CookieConfig
}

func New(l log.Logger, authUC auth.UseCase, cookieConfig CookieConfig) Middleware {
	if cookieConfig.Name == "" {
		cookieConfig.Name = DefaultCookieName
	}
	return Middleware{
		l:            l,
		authUC:       authUC,
		cookieConfig: cookieConfig,
	}
}

// CookieName returns the name of the session cookie.
func (mw Middleware) CookieName() string {
	return mw.cookieConfig.Name
}
