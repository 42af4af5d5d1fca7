package auth

import (
	"regexp"
	"strings"

	"taskflow/internal/model"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

const (
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Invalid email"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 6 characters"
	MsgNameRequired     = "Name is required"
	MsgPasswordMismatch = "Passwords do not match"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidateLogin checks every field of the login form and returns all
// failures at once. An empty result means the form is valid.
func ValidateLogin(in LoginInput) FieldErrors {
	errs := FieldErrors{}
	validateEmail(errs, in.Email)
	validatePassword(errs, in.Password)
	return errs
}

// ValidateRegister applies the login rules plus name and confirmation.
func ValidateRegister(in RegisterInput) FieldErrors {
	errs := FieldErrors{}
	validateEmail(errs, in.Email)
	validatePassword(errs, in.Password)
	if in.Name == "" {
		errs[FieldName] = MsgNameRequired
	}
	if in.Password != in.ConfirmPassword {
		errs[FieldConfirmPassword] = MsgPasswordMismatch
	}
	return errs
}

func validateEmail(errs FieldErrors, email string) {
	switch {
	case email == "":
		errs[FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = MsgEmailInvalid
	}
}

func validatePassword(errs FieldErrors, password string) {
	switch {
	case password == "":
		errs[FieldPassword] = MsgPasswordRequired
	case len([]rune(password)) < MinPasswordLength:
		errs[FieldPassword] = MsgPasswordTooShort
	}
}

// Identity builds the user handed to the dashboard. Without a name the local
// part of the email is used.
func Identity(name, email string) model.User {
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return model.User{Name: name, Email: email}
}
