package model

// User is the nominal identity handed to the dashboard after the login form
// passes validation. It is never checked against a credential store.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
