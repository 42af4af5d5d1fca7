package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/auth"
	"taskflow/pkg/response"
)

const (
	DefaultCookieName = "taskflow_session"
	sessionKey        = "taskflow.session"
)

// Auth rejects requests without a live session with 401.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := mw.resolve(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// OptionalAuth attaches the session when there is one and never rejects.
func (mw Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := mw.resolve(c); ok {
			c.Set(sessionKey, sess)
		}
		c.Next()
	}
}

func (mw Middleware) resolve(c *gin.Context) (*auth.Session, bool) {
	token, err := c.Cookie(mw.cookieConfig.Name)
	if err != nil || token == "" {
		return nil, false
	}
	sess, err := mw.authUC.Session(c.Request.Context(), token)
	if err != nil {
		return nil, false
	}
	return sess, true
}

// SetSessionCookie writes the session cookie for token.
func (mw Middleware) SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mw.cookieConfig.Name, token, mw.cookieConfig.MaxAge, "/", "", mw.cookieConfig.Secure, true)
}

// ClearSessionCookie expires the session cookie.
func (mw Middleware) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(mw.cookieConfig.Name, "", -1, "/", "", mw.cookieConfig.Secure, true)
}

// GetSession returns the session attached by Auth or OptionalAuth.
func GetSession(c *gin.Context) (*auth.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*auth.Session)
	return sess, ok && sess != nil
}
