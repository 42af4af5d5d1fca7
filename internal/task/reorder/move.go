package reorder

import "taskflow/internal/model"

// IndexOf returns the position of id in tasks, or -1.
func IndexOf(tasks []model.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Move returns a new slice with the dragged task removed and reinserted at
// the index the target occupied before removal, so dragging A onto B puts A
// in B's former slot and shifts everything in between by one. The input is
// never modified. ok is false, and tasks is returned as is, when the ids are
// equal or either one is missing.
func Move(tasks []model.Task, draggedID, targetID string) (out []model.Task, ok bool) {
	if draggedID == "" || draggedID == targetID {
		return tasks, false
	}
	from := IndexOf(tasks, draggedID)
	to := IndexOf(tasks, targetID)
	if from < 0 || to < 0 {
		return tasks, false
	}

	out = make([]model.Task, 0, len(tasks))
	out = append(out, tasks[:from]...)
	out = append(out, tasks[from+1:]...)

	moved := tasks[from]
	out = append(out, model.Task{})
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out, true
}
