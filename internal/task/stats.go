package task

import (
	"math"

	"taskflow/internal/model"
)

// ComputeStats derives the progress numbers for tasks.
func ComputeStats(tasks []model.Task) Stats {
	var s Stats
	for _, t := range tasks {
		if t.IsPlaceholder() {
			continue
		}
		s.Total++
		if t.Completed {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Completed) * 100 / float64(s.Total)))
	}
	return s
}
