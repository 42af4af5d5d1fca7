package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"taskflow/internal/auth"
	pkgLog "taskflow/pkg/log"
)

// Config tunes sessions and login throttling.
type Config struct {
	SessionTTL        time.Duration
	MaxSessions       int
	DefaultDailyCount int
	RateLimitPerMin   int
}

const (
	defaultSessionTTL  = 24 * time.Hour
	defaultMaxSessions = 1000
)

type implUseCase struct {
	l        pkgLog.Logger
	sessions *expirable.LRU[string, *auth.Session]
	limiter  *rateLimiter
	cfg      Config

	now      func() time.Time
	newToken func() string
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates the auth UseCase. Zero config values fall back to defaults.
func New(l pkgLog.Logger, cfg Config) *implUseCase {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = defaultMaxSessions
	}

	return &implUseCase{
		l:        l,
		sessions: expirable.NewLRU[string, *auth.Session](cfg.MaxSessions, nil, cfg.SessionTTL),
		limiter:  newRateLimiter(cfg.RateLimitPerMin),
		cfg:      cfg,
		now:      time.Now,
		newToken: func() string { return uuid.NewString() },
	}
}
