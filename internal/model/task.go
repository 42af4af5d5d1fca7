package model

import "time"

// Task is a single to-do item. Field order and JSON names are the persisted
// layout of the task list slot.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// IsPlaceholder reports whether the task is an empty slot awaiting a title.
func (t Task) IsPlaceholder() bool {
	return t.Title == ""
}
