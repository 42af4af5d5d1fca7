// Package reorder holds the drag-and-drop reorder gesture and the splice
// rule it applies to the task list.
package reorder

import "sync"

// State is the phase of a drag gesture.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Gesture tracks one drag interaction by task id. The zero value is Idle and
// ready to use. Safe for concurrent use.
type Gesture struct {
	mu      sync.Mutex
	dragged string
	hover   string
}

// Snapshot is a read-only view of a Gesture.
type Snapshot struct {
	State   State  `json:"-"`
	Dragged string `json:"dragged"`
	Hover   string `json:"hover"`
}

// Start begins dragging id. Starting while already dragging replaces the
// source.
func (g *Gesture) Start(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dragged = id
	g.hover = ""
}

// Over records the hover target. It has no effect when idle and repeated
// calls are idempotent.
func (g *Gesture) Over(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dragged == "" {
		return
	}
	g.hover = id
}

// Drop ends the gesture on target and always returns to Idle. It returns the
// dragged id and true only when a reorder should be applied: a drag was
// active and target differs from the dragged task.
func (g *Gesture) Drop(target string) (dragged string, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	dragged = g.dragged
	g.dragged = ""
	g.hover = ""
	if dragged == "" || dragged == target {
		return "", false
	}
	return dragged, true
}

// Cancel abandons the gesture without a reorder.
func (g *Gesture) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.dragged = ""
	g.hover = ""
}

// Snapshot returns the current state.
func (g *Gesture) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := Snapshot{Dragged: g.dragged, Hover: g.hover}
	if g.dragged != "" {
		s.State = Dragging
	}
	return s
}
