package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
	"taskflow/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Description Validates the login form and opens a session. No credential is checked.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Login form"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Invalid form"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput(c.ClientIP()))
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		h.writeError(c, err)
		return
	}

	h.mw.SetSessionCookie(c, out.Session.Token)
	response.OK(c, newSessionResp(out.Session))
}

// Register godoc
// @Summary     Register
// @Description Validates the registration form and opens a session. Nothing is stored.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Registration form"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Invalid form"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Register(ctx, req.toInput(c.ClientIP()))
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		h.writeError(c, err)
		return
	}

	h.mw.SetSessionCookie(c, out.Session.Token)
	response.OK(c, newSessionResp(out.Session))
}

// Logout godoc
// @Summary     Log out
// @Description Drops the current session and clears the cookie.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if sess, ok := middleware.GetSession(c); ok {
		if err := h.uc.Logout(ctx, sess.Token); err != nil {
			h.l.Errorf(ctx, "uc.Logout: %v", err)
		}
	}

	h.mw.ClearSessionCookie(c)
	response.OK(c, nil)
}

// Me godoc
// @Summary     Current session
// @Description Returns the identity and daily count of the current session.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, newSessionResp(sess))
}
