package dashboard

import (
	"taskflow/internal/model"
	"taskflow/internal/task"
)

const (
	MinDailyCount     = 1
	MaxDailyCount     = 10
	DefaultDailyCount = 5
)

// Overview is everything the dashboard page shows.
type Overview struct {
	Greeting   string
	Welcome    string
	User       model.User
	Progress   task.Stats
	DailyCount int
	Tasks      []model.Task
}

// DailyCountOptions lists the selectable daily counts.
func DailyCountOptions() []int {
	opts := make([]int, 0, MaxDailyCount-MinDailyCount+1)
	for n := MinDailyCount; n <= MaxDailyCount; n++ {
		opts = append(opts, n)
	}
	return opts
}

// ValidDailyCount reports whether n is within the selectable range.
func ValidDailyCount(n int) bool {
	return n >= MinDailyCount && n <= MaxDailyCount
}
