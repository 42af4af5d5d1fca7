package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
	pkgErrors "taskflow/pkg/errors"
	"taskflow/pkg/response"
)

const (
	authTemplate      = "auth.html"
	dashboardTemplate = "dashboard.html"
)

// Page renders the dashboard, or the sign-in form without a session.
func (h *handler) Page(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.HTML(http.StatusOK, authTemplate, nil)
		return
	}

	out := h.uc.Overview(c.Request.Context(), sess.User, sess)
	c.HTML(http.StatusOK, dashboardTemplate, h.newPageData(out))
}

// Overview godoc
// @Summary     Dashboard overview
// @Description Returns the greeting, progress stats, daily count and tasks.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} overviewResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/dashboard [GET]
func (h *handler) Overview(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, errNoSession)
		return
	}

	out := h.uc.Overview(c.Request.Context(), sess.User, sess)
	response.OK(c, h.newOverviewResp(out))
}

// SetDailyCount godoc
// @Summary     Set daily task count
// @Description Stores how many tasks the user wants today (1 to 10).
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Param       body body dailyCountReq true "Daily count"
// @Success     200 {object} overviewResp
// @Failure     400 {object} response.Resp "Out of range"
// @Router      /api/v1/dashboard/daily-count [PUT]
func (h *handler) SetDailyCount(c *gin.Context) {
	ctx := c.Request.Context()

	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, errNoSession)
		return
	}

	var req dailyCountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "dashboard.http.SetDailyCount: %v", err)
		response.Error(c, pkgErrors.ErrBadRequest)
		return
	}

	if err := h.uc.SetDailyCount(ctx, sess, req.Count); err != nil {
		h.l.Warnf(ctx, "uc.SetDailyCount: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newOverviewResp(h.uc.Overview(ctx, sess.User, sess)))
}

// Generate godoc
// @Summary     Generate empty tasks
// @Description Appends placeholder tasks until the list reaches the daily count.
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} generateResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, errNoSession)
		return
	}

	out, err := h.uc.Generate(ctx, sess)
	if err != nil {
		h.l.Errorf(ctx, "uc.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, generateResp{Created: newTaskResps(out.Created)})
}
