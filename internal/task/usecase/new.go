package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/repository"
	pkgLog "taskflow/pkg/log"
)

// implUseCase is the in-memory Task Store. mu serializes every read and
// mutation; a mutation only replaces tasks after the repository accepted the
// new list.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository

	mu     sync.Mutex
	tasks  []model.Task
	loaded bool

	now   func() time.Time
	newID func() string
}

var _ task.UseCase = (*implUseCase)(nil)

// Option customizes the store.
type Option func(*implUseCase)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// WithIDGenerator overrides the uuid based id generator.
func WithIDGenerator(newID func() string) Option {
	return func(uc *implUseCase) { uc.newID = newID }
}

// New creates a new task UseCase instance. Call Load before serving.
func New(l pkgLog.Logger, repo repository.Repository, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:     l,
		repo:  repo,
		tasks: []model.Task{},
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
