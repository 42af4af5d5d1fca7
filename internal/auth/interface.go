package auth

import "context"

// UseCase is the mock auth gate: it validates the login/registration form
// and opens an in-memory session. No credential is ever checked.
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (SessionOutput, error)
	Register(ctx context.Context, input RegisterInput) (SessionOutput, error)
	Logout(ctx context.Context, token string) error
	// Session resolves a token. Returns ErrSessionNotFound for unknown or
	// expired tokens.
	Session(ctx context.Context, token string) (*Session, error)
}
