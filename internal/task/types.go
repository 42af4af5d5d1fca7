package task

import "taskflow/internal/model"

// --- UseCase Inputs ---

type AddInput struct {
	Title       string
	Description string
}

// EditInput replaces title, description and completion of the task with ID.
// A nil Completed keeps the stored flag.
type EditInput struct {
	ID          string
	Title       string
	Description string
	Completed   *bool
}

type MoveInput struct {
	DraggedID string
	TargetID  string
}

// --- UseCase Outputs ---

// MutationOutput reports the affected task. Changed is false when the
// operation was a no-op (unknown id, empty title, drop on self).
type MutationOutput struct {
	Task    model.Task
	Changed bool
}

type ListOutput struct {
	Tasks []model.Task
	Stats Stats
}

type GenerateSlotsOutput struct {
	Created []model.Task
}

// Stats are the aggregate numbers shown on the progress card. Placeholder
// tasks never count.
type Stats struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
