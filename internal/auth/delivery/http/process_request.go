package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "taskflow/pkg/errors"
)

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "auth.http.processLoginReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "auth.http.processRegisterReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
