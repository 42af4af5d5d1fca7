package usecase

import (
	"context"

	"taskflow/internal/auth"
	"taskflow/internal/model"
)

// Login validates the login form and opens a session.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.SessionOutput, error) {
	if !uc.limiter.Allow(input.ClientIP) {
		uc.l.Warnf(ctx, "uc.Login: rate limit exceeded for %s", input.ClientIP)
		return auth.SessionOutput{}, auth.ErrRateLimited
	}

	if errs := auth.ValidateLogin(input); len(errs) > 0 {
		return auth.SessionOutput{}, &auth.ValidationError{Fields: errs}
	}

	return uc.open(ctx, auth.Identity("", input.Email)), nil
}

// Register validates the registration form and opens a session.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.SessionOutput, error) {
	if !uc.limiter.Allow(input.ClientIP) {
		uc.l.Warnf(ctx, "uc.Register: rate limit exceeded for %s", input.ClientIP)
		return auth.SessionOutput{}, auth.ErrRateLimited
	}

	if errs := auth.ValidateRegister(input); len(errs) > 0 {
		return auth.SessionOutput{}, &auth.ValidationError{Fields: errs}
	}

	return uc.open(ctx, auth.Identity(input.Name, input.Email)), nil
}

func (uc *implUseCase) open(ctx context.Context, user model.User) auth.SessionOutput {
	sess := auth.NewSession(uc.newToken(), user, uc.cfg.DefaultDailyCount, uc.now())
	uc.sessions.Add(sess.Token, sess)
	uc.l.Infof(ctx, "uc.open: session opened for %s", user.Email)
	return auth.SessionOutput{Session: sess}
}
