package http

import (
	"time"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/reorder"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r createReq) toInput() task.AddInput {
	return task.AddInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

type updateReq struct {
	ID          string `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   *bool  `json:"completed"`
}

func (r updateReq) toInput() task.EditInput {
	return task.EditInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
	}
}

type orderReq struct {
	IDs []string `json:"ids" binding:"required"`
}

type slotsReq struct {
	Count int `json:"count"`
}

type dragReq struct {
	ID string `json:"id"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Placeholder bool      `json:"placeholder"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Placeholder: t.IsPlaceholder(),
		CreatedAt:   t.CreatedAt,
	}
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Stats task.Stats `json:"stats"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Tasks: newTaskResps(out.Tasks),
		Stats: out.Stats,
	}
}

type mutationResp struct {
	Task    *taskResp `json:"task,omitempty"`
	Changed bool      `json:"changed"`
}

func (h *handler) newMutationResp(out task.MutationOutput) mutationResp {
	resp := mutationResp{Changed: out.Changed}
	if out.Changed {
		t := newTaskResp(out.Task)
		resp.Task = &t
	}
	return resp
}

type slotsResp struct {
	Created []taskResp `json:"created"`
}

type dragResp struct {
	State   string `json:"state"`
	Dragged string `json:"dragged,omitempty"`
	Hover   string `json:"hover,omitempty"`
}

func newDragResp(s reorder.Snapshot) dragResp {
	return dragResp{
		State:   s.State.String(),
		Dragged: s.Dragged,
		Hover:   s.Hover,
	}
}

type dropResp struct {
	Moved bool       `json:"moved"`
	Tasks []taskResp `json:"tasks"`
}
