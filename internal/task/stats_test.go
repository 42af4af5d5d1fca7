package task_test

import (
	"testing"

	"taskflow/internal/model"
	"taskflow/internal/task"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		tasks []model.Task
		want  task.Stats
	}{
		{name: "empty", tasks: nil, want: task.Stats{}},
		{
			name: "placeholders only",
			tasks: []model.Task{
				{ID: "1"}, {ID: "2", Completed: true},
			},
			want: task.Stats{},
		},
		{
			name: "half done",
			tasks: []model.Task{
				{ID: "1", Title: "A"}, {ID: "2", Title: "B", Completed: true},
			},
			want: task.Stats{Completed: 1, Total: 2, Percentage: 50},
		},
		{
			name: "rounds to nearest",
			tasks: []model.Task{
				{ID: "1", Title: "A", Completed: true},
				{ID: "2", Title: "B", Completed: true},
				{ID: "3", Title: "C"},
			},
			want: task.Stats{Completed: 2, Total: 3, Percentage: 67},
		},
		{
			name: "completed placeholder ignored",
			tasks: []model.Task{
				{ID: "1", Title: "A", Completed: true},
				{ID: "2", Completed: true},
			},
			want: task.Stats{Completed: 1, Total: 1, Percentage: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := task.ComputeStats(tt.tasks)
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if got.Completed > got.Total {
				t.Errorf("completed %d exceeds total %d", got.Completed, got.Total)
			}
		})
	}
}
