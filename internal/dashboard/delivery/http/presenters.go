package http

import (
	"time"

	"taskflow/internal/dashboard"
	"taskflow/internal/model"
	"taskflow/internal/task"
)

// --- Request DTOs ---

type dailyCountReq struct {
	Count int `json:"count"`
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

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = taskResp{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			Placeholder: t.IsPlaceholder(),
			CreatedAt:   t.CreatedAt,
		}
	}
	return out
}

type userResp struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type overviewResp struct {
	Greeting   string     `json:"greeting"`
	Welcome    string     `json:"welcome"`
	User       userResp   `json:"user"`
	Progress   task.Stats `json:"progress"`
	DailyCount int        `json:"dailyCount"`
	Options    []int      `json:"options"`
	Tasks      []taskResp `json:"tasks"`
}

func (h *handler) newOverviewResp(out dashboard.Overview) overviewResp {
	return overviewResp{
		Greeting:   out.Greeting,
		Welcome:    out.Welcome,
		User:       userResp{Name: out.User.Name, Email: out.User.Email},
		Progress:   out.Progress,
		DailyCount: out.DailyCount,
		Options:    dashboard.DailyCountOptions(),
		Tasks:      newTaskResps(out.Tasks),
	}
}

type generateResp struct {
	Created []taskResp `json:"created"`
}

// pageData feeds the dashboard template.
type pageData struct {
	Welcome    string
	User       model.User
	Progress   task.Stats
	DailyCount int
	Options    []int
	Tasks      []model.Task
}

func (h *handler) newPageData(out dashboard.Overview) pageData {
	return pageData{
		Welcome:    out.Welcome,
		User:       out.User,
		Progress:   out.Progress,
		DailyCount: out.DailyCount,
		Options:    dashboard.DailyCountOptions(),
		Tasks:      out.Tasks,
	}
}
