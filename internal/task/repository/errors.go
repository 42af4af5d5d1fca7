package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load task list")
	ErrFailedToSave = errors.New("failed to save task list")
)
