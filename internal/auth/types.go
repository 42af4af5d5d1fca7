package auth

import (
	"sync"
	"time"

	"taskflow/internal/model"
	"taskflow/internal/task/reorder"
)

// --- UseCase Inputs ---

type LoginInput struct {
	Email    string
	Password string
	ClientIP string
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	ClientIP        string
}

// --- UseCase Outputs ---

type SessionOutput struct {
	Session *Session
}

// Session is the per-login view state: the identity, the chosen daily task
// count and the in-flight drag gesture.
type Session struct {
	Token     string
	User      model.User
	CreatedAt time.Time

	// Gesture is safe for concurrent use on its own.
	Gesture reorder.Gesture

	mu         sync.Mutex
	dailyCount int
}

// NewSession creates a session with the given daily task count.
func NewSession(token string, user model.User, dailyCount int, now time.Time) *Session {
	return &Session{
		Token:      token,
		User:       user,
		CreatedAt:  now,
		dailyCount: dailyCount,
	}
}

// DailyCount returns the desired number of tasks for the day.
func (s *Session) DailyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dailyCount
}

// SetDailyCount stores n. Range checks belong to the caller.
func (s *Session) SetDailyCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dailyCount = n
}
