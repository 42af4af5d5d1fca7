package usecase

import (
	"context"

	"taskflow/internal/auth"
)

// Session returns the live session for token.
func (uc *implUseCase) Session(ctx context.Context, token string) (*auth.Session, error) {
	if token == "" {
		return nil, auth.ErrSessionNotFound
	}
	sess, ok := uc.sessions.Get(token)
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	return sess, nil
}

// Logout drops the session. Unknown tokens are ignored.
func (uc *implUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if uc.sessions.Remove(token) {
		uc.l.Infof(ctx, "uc.Logout: session closed")
	}
	return nil
}
