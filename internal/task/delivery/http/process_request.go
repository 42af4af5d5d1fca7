package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "taskflow/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.http.processCreateReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.http.processUpdateReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errIDRequired
	}
	return req, nil
}

func (h *handler) processOrderReq(c *gin.Context) (orderReq, error) {
	var req orderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.http.processOrderReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler) processSlotsReq(c *gin.Context) (slotsReq, error) {
	var req slotsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.http.processSlotsReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

func (h *handler) processDragReq(c *gin.Context) (dragReq, error) {
	var req dragReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.http.processDragReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}
	if strings.TrimSpace(req.ID) == "" {
		return req, errIDRequired
	}
	return req, nil
}
