package task

import "errors"

var (
	ErrPersist         = errors.New("failed to persist task list")
	ErrNotPermutation  = errors.New("order does not match current tasks")
	ErrInvalidSlotGoal = errors.New("slot count must not be negative")
)
