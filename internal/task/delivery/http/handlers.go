package http

import (
	"github.com/gin-gonic/gin"

	"taskflow/internal/middleware"
	"taskflow/internal/task"
	"taskflow/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Returns the tasks in display order with progress stats.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, h.newListResp(h.uc.List(c.Request.Context())))
}

// Create godoc
// @Summary     Add a task
// @Description Appends a task. An empty title is ignored and reported as changed=false.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Add(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Add: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// Update godoc
// @Summary     Edit a task
// @Description Replaces title, description and optionally completion. Unknown ids are a no-op.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields"
// @Success     200 {object} mutationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Edit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} mutationResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Delete(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// Toggle godoc
// @Summary     Toggle completion
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} mutationResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ToggleCompletion(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleCompletion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMutationResp(out))
}

// Order godoc
// @Summary     Reorder tasks
// @Description Rearranges the list to the given id order, which must be a permutation of the current ids.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body orderReq true "Ids in new order"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Not a permutation"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/order [PUT]
func (h *handler) Order(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOrderReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ReorderByIDs(ctx, req.IDs); err != nil {
		h.l.Warnf(ctx, "uc.ReorderByIDs: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(h.uc.List(ctx)))
}

// Slots godoc
// @Summary     Generate empty slots
// @Description Appends placeholders until the list holds count entries.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body slotsReq true "Target length"
// @Success     200 {object} slotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/slots [POST]
func (h *handler) Slots(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSlotsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.GenerateEmptySlots(ctx, req.Count)
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateEmptySlots: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, slotsResp{Created: newTaskResps(out.Created)})
}

// Stats godoc
// @Summary     Progress stats
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} task.Stats
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	response.OK(c, h.uc.Stats(c.Request.Context()))
}

// DragStart godoc
// @Summary     Start dragging a task
// @Tags        Drag
// @Accept      json
// @Produce     json
// @Param       body body dragReq true "Dragged task"
// @Success     200 {object} dragResp
// @Router      /api/v1/tasks/drag/start [POST]
func (h *handler) DragStart(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, errNoSession)
		return
	}

	req, err := h.processDragReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess.Gesture.Start(req.ID)
	response.OK(c, newDragResp(sess.Gesture.Snapshot()))
}

// DragOver godoc
// @Summary     Hover over a task
// @Tags        Drag
// @Accept      json
// @Produce     json
// @Param       body body dragReq true "Hovered task"
// @Success     200 {object} dragResp
// @Router      /api/v1/tasks/drag/over [POST]
func (h *handler) DragOver(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, errNoSession)
		return
	}

	req, err := h.processDragReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sess.Gesture.Over(req.ID)
	response.OK(c, newDragResp(sess.Gesture.Snapshot()))
}

// DragDrop godoc
// @Summary     Drop onto a task
// @Description Moves the dragged task into the target's slot. Dropping on itself or without a drag is a no-op.
// @Tags        Drag
// @Accept      json
// @Produce     json
// @Param       body body dragReq true "Drop target"
// @Success     200 {object} dropResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/drag/drop [POST]
func (h *handler) DragDrop(c *gin.Context) {
	ctx := c.Request.Context()

	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, errNoSession)
		return
	}

	req, err := h.processDragReq(c)
	if err != nil {
		sess.Gesture.Cancel()
		response.Error(c, err)
		return
	}

	moved := false
	if dragged, ok := sess.Gesture.Drop(req.ID); ok {
		out, err := h.uc.Move(ctx, task.MoveInput{DraggedID: dragged, TargetID: req.ID})
		if err != nil {
			h.l.Errorf(ctx, "uc.Move: %v", err)
			response.Error(c, h.mapError(err))
			return
		}
		moved = out.Changed
	}

	response.OK(c, dropResp{
		Moved: moved,
		Tasks: newTaskResps(h.uc.List(ctx).Tasks),
	})
}

// DragCancel godoc
// @Summary     Cancel the drag
// @Tags        Drag
// @Produce     json
// @Success     200 {object} dragResp
// @Router      /api/v1/tasks/drag/cancel [POST]
func (h *handler) DragCancel(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		response.Error(c, errNoSession)
		return
	}

	sess.Gesture.Cancel()
	response.OK(c, newDragResp(sess.Gesture.Snapshot()))
}

