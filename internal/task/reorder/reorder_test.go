package reorder_test

import (
	"sort"
	"strings"
	"testing"

	"taskflow/internal/model"
	"taskflow/internal/task/reorder"
)

func tasksOf(ids ...string) []model.Task {
	out := make([]model.Task, len(ids))
	for i, id := range ids {
		out[i] = model.Task{ID: id, Title: id}
	}
	return out
}

func idsOf(tasks []model.Task) string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return strings.Join(ids, ",")
}

func TestMove(t *testing.T) {
	tests := []struct {
		name          string
		list          string
		dragged, onto string
		want          string
		wantOK        bool
	}{
		{name: "A onto B", list: "A,B", dragged: "A", onto: "B", want: "B,A", wantOK: true},
		{name: "B onto A", list: "A,B", dragged: "B", onto: "A", want: "B,A", wantOK: true},
		{name: "forward over gap", list: "A,B,C,D", dragged: "A", onto: "C", want: "B,C,A,D", wantOK: true},
		{name: "backward over gap", list: "A,B,C,D", dragged: "D", onto: "B", want: "A,D,B,C", wantOK: true},
		{name: "to last", list: "A,B,C", dragged: "A", onto: "C", want: "B,C,A", wantOK: true},
		{name: "self", list: "A,B", dragged: "A", onto: "A", want: "A,B"},
		{name: "unknown dragged", list: "A,B", dragged: "X", onto: "A", want: "A,B"},
		{name: "unknown target", list: "A,B", dragged: "A", onto: "X", want: "A,B"},
		{name: "no drag", list: "A,B", dragged: "", onto: "A", want: "A,B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := tasksOf(strings.Split(tt.list, ",")...)
			got, ok := reorder.Move(list, tt.dragged, tt.onto)
			if ok != tt.wantOK {
				t.Errorf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if idsOf(got) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, idsOf(got))
			}
			if idsOf(list) != tt.list {
				t.Errorf("input mutated: %s", idsOf(list))
			}
		})
	}
}

func TestMoveIsPermutation(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	list := tasksOf(ids...)
	for _, from := range ids {
		for _, to := range ids {
			got, _ := reorder.Move(list, from, to)
			gotIDs := strings.Split(idsOf(got), ",")
			sort.Strings(gotIDs)
			if strings.Join(gotIDs, ",") != "a,b,c,d,e" {
				t.Fatalf("move %s onto %s is not a permutation: %s", from, to, idsOf(got))
			}
		}
	}
}

func TestGesture(t *testing.T) {
	t.Run("drop without drag is a no-op", func(t *testing.T) {
		var g reorder.Gesture
		if _, ok := g.Drop("A"); ok {
			t.Error("expected no reorder without an active drag")
		}
	})

	t.Run("drop on self resets", func(t *testing.T) {
		var g reorder.Gesture
		g.Start("A")
		if _, ok := g.Drop("A"); ok {
			t.Error("expected no reorder on self drop")
		}
		if g.Snapshot().State != reorder.Idle {
			t.Error("expected idle after drop")
		}
	})

	t.Run("hover is idempotent and drop returns source", func(t *testing.T) {
		var g reorder.Gesture
		g.Start("A")
		g.Over("B")
		g.Over("B")
		snap := g.Snapshot()
		if snap.State != reorder.Dragging || snap.Dragged != "A" || snap.Hover != "B" {
			t.Errorf("unexpected snapshot: %+v", snap)
		}
		dragged, ok := g.Drop("B")
		if !ok || dragged != "A" {
			t.Errorf("expected A/true, got %s/%v", dragged, ok)
		}
		if g.Snapshot() != (reorder.Snapshot{}) {
			t.Errorf("expected cleared gesture, got %+v", g.Snapshot())
		}
		if _, ok := g.Drop("B"); ok {
			t.Error("second drop must not reuse the previous source")
		}
	})

	t.Run("over while idle is ignored", func(t *testing.T) {
		var g reorder.Gesture
		g.Over("B")
		if g.Snapshot().Hover != "" {
			t.Error("hover recorded without a drag")
		}
	})

	t.Run("cancel", func(t *testing.T) {
		var g reorder.Gesture
		g.Start("A")
		g.Cancel()
		if _, ok := g.Drop("B"); ok {
			t.Error("expected no reorder after cancel")
		}
	})
}
