// Package tui is a terminal rendition of the dashboard: welcome line,
// progress bar, daily count and the task list with keyboard reordering.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskflow/internal/dashboard"
	"taskflow/internal/model"
	"taskflow/internal/task"
	"taskflow/internal/task/reorder"
	"taskflow/pkg/log"
)

type inputMode int

const (
	modeList inputMode = iota
	modeAdd
	modeEdit
)

const defaultWidth = 60

// preferences keeps the daily count for the lifetime of the program.
type preferences struct {
	dailyCount int
}

func (p *preferences) DailyCount() int     { return p.dailyCount }
func (p *preferences) SetDailyCount(n int) { p.dailyCount = n }

// Model is the bubbletea model of the dashboard.
type Model struct {
	ctx    context.Context
	l      log.Logger
	taskUC task.UseCase
	dashUC dashboard.UseCase
	user   model.User
	prefs  *preferences
	keys   KeyMap

	gesture *reorder.Gesture
	view    dashboard.Overview
	cursor  int

	mode   inputMode
	input  textinput.Model
	editID string

	bar    progress.Model
	width  int
	status string
	err    error
}

// New builds the model. dailyCount outside 1..10 falls back to the default.
func New(ctx context.Context, l log.Logger, taskUC task.UseCase, dashUC dashboard.UseCase, user model.User, dailyCount int) Model {
	if !dashboard.ValidDailyCount(dailyCount) {
		dailyCount = dashboard.DefaultDailyCount
	}

	input := textinput.New()
	input.Placeholder = "Task title"
	input.CharLimit = 200

	m := Model{
		ctx:     ctx,
		l:       l,
		taskUC:  taskUC,
		dashUC:  dashUC,
		user:    user,
		prefs:   &preferences{dailyCount: dailyCount},
		keys:    DefaultKeyMap,
		gesture: &reorder.Gesture{},
		input:   input,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultWidth-10)),
		width:   defaultWidth,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(10, msg.Width-14)
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeList {
			return m.handleInputKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.Reset()
		m.input.Placeholder = "Task title"
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Edit):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editID = t.ID
		m.input.SetValue(t.Title)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.current(); ok {
			_, err := m.taskUC.ToggleCompletion(m.ctx, t.ID)
			m.afterMutation(err)
		}

	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.current(); ok {
			_, err := m.taskUC.Delete(m.ctx, t.ID)
			m.afterMutation(err)
		}

	case key.Matches(msg, m.keys.Pick):
		if t, ok := m.current(); ok {
			m.gesture.Start(t.ID)
			m.status = "Moving: use j/k and enter to drop, esc to cancel"
		}

	case key.Matches(msg, m.keys.Drop):
		m.drop()

	case key.Matches(msg, m.keys.Cancel):
		m.gesture.Cancel()

	case key.Matches(msg, m.keys.Generate):
		out, err := m.dashUC.Generate(m.ctx, m.prefs)
		m.afterMutation(err)
		if err == nil {
			m.status = fmt.Sprintf("Added %d empty tasks", len(out.Created))
		}

	case key.Matches(msg, m.keys.More):
		m.setDailyCount(m.prefs.DailyCount() + 1)

	case key.Matches(msg, m.keys.Less):
		m.setDailyCount(m.prefs.DailyCount() - 1)
	}

	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leaveInput()
		return m, nil

	case tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		var err error
		switch m.mode {
		case modeAdd:
			_, err = m.taskUC.Add(m.ctx, task.AddInput{Title: title})
		case modeEdit:
			err = m.editTitle(title)
		}
		m.leaveInput()
		m.afterMutation(err)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) editTitle(title string) error {
	t, ok := m.find(m.editID)
	if !ok {
		return nil
	}
	_, err := m.taskUC.Edit(m.ctx, task.EditInput{
		ID:          t.ID,
		Title:       title,
		Description: t.Description,
	})
	return err
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.editID = ""
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) drop() {
	t, ok := m.current()
	if !ok {
		m.gesture.Cancel()
		return
	}
	dragged, ok := m.gesture.Drop(t.ID)
	if !ok {
		return
	}
	out, err := m.taskUC.Move(m.ctx, task.MoveInput{DraggedID: dragged, TargetID: t.ID})
	m.afterMutation(err)
	if err == nil && out.Changed {
		m.cursor = reorder.IndexOf(m.view.Tasks, dragged)
	}
}

func (m *Model) setDailyCount(n int) {
	if err := m.dashUC.SetDailyCount(m.ctx, m.prefs, n); err != nil {
		m.status = fmt.Sprintf("Daily count stays between %d and %d", dashboard.MinDailyCount, dashboard.MaxDailyCount)
		return
	}
	m.refresh()
}

func (m *Model) afterMutation(err error) {
	if err != nil {
		m.l.Errorf(m.ctx, "tui: %v", err)
		m.err = err
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.view = m.dashUC.Overview(m.ctx, m.user, m.prefs)
	if m.cursor >= len(m.view.Tasks) {
		m.cursor = len(m.view.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.view.Tasks) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.view.Tasks)-1)
	if m.gesture.Snapshot().State == reorder.Dragging {
		m.gesture.Over(m.view.Tasks[m.cursor].ID)
	}
}

func (m Model) current() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Tasks) {
		return model.Task{}, false
	}
	return m.view.Tasks[m.cursor], true
}

func (m Model) find(id string) (model.Task, bool) {
	if i := reorder.IndexOf(m.view.Tasks, id); i >= 0 {
		return m.view.Tasks[i], true
	}
	return model.Task{}, false
}

// Tasks returns the tasks currently shown.
func (m Model) Tasks() []model.Task {
	return m.view.Tasks
}

// DailyCount returns the selected daily count.
func (m Model) DailyCount() int {
	return m.prefs.DailyCount()
}
