package dashboard

import (
	"fmt"
	"time"
)

// Greeting picks the salutation for the local hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

// Welcome renders the headline shown above the dashboard.
func Welcome(t time.Time, name string) string {
	return fmt.Sprintf("%s, %s!", Greeting(t), name)
}
