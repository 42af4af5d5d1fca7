package http

import (
	"time"

	"taskflow/internal/auth"
)

// --- Request DTOs ---

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) toInput(clientIP string) auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
		ClientIP: clientIP,
	}
}

type registerReq struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r registerReq) toInput(clientIP string) auth.RegisterInput {
	return auth.RegisterInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		ClientIP:        clientIP,
	}
}

// --- Response DTOs ---

type userResp struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type sessionResp struct {
	User       userResp  `json:"user"`
	DailyCount int       `json:"dailyCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

func newSessionResp(sess *auth.Session) sessionResp {
	return sessionResp{
		User: userResp{
			Name:  sess.User.Name,
			Email: sess.User.Email,
		},
		DailyCount: sess.DailyCount(),
		CreatedAt:  sess.CreatedAt,
	}
}
