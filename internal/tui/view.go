package tui

import (
	"fmt"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task/reorder"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.view.Welcome))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("How is your productivity today?"))
	b.WriteString("\n\n")

	p := m.view.Progress
	progressCard := fmt.Sprintf("Today's progress  %d%%\n%s\n%s",
		p.Percentage,
		m.bar.ViewAs(float64(p.Percentage)/100),
		subtleStyle.Render(fmt.Sprintf("%d of %d tasks completed", p.Completed, p.Total)),
	)
	b.WriteString(cardStyle.Render(progressCard))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Tasks for today: %d  %s\n\n", m.view.DailyCount, subtleStyle.Render("(+/- to change, g to generate)")))

	b.WriteString(m.renderList())

	switch m.mode {
	case modeAdd:
		b.WriteString("\nNew task: " + m.input.View() + "\n")
	case modeEdit:
		b.WriteString("\nEdit title: " + m.input.View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + subtleStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

func (m Model) renderList() string {
	if len(m.view.Tasks) == 0 {
		return subtleStyle.Render("No tasks yet. Press a to add one or g to generate your daily slots.") + "\n"
	}

	drag := m.gesture.Snapshot()
	lines := make([]string, 0, len(m.view.Tasks))
	for i, t := range m.view.Tasks {
		lines = append(lines, m.renderTask(i, t, drag))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) renderTask(i int, t model.Task, drag reorder.Snapshot) string {
	pointer := "  "
	if i == m.cursor {
		pointer = cursorStyle.Render("> ")
	}

	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	title := t.Title
	switch {
	case t.IsPlaceholder():
		title = placeholderStyle.Render("empty task")
	case t.Completed:
		title = doneStyle.Render(title)
	}
	if t.Description != "" {
		title += " " + subtleStyle.Render(t.Description)
	}

	line := fmt.Sprintf("%s%s %s", pointer, check, title)
	if drag.State == reorder.Dragging && drag.Dragged == t.ID {
		line = draggedStyle.Render(line + "  (moving)")
	}
	return line
}

func (m Model) renderHelp() string {
	bindings := m.keys.ShortHelp()
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return subtleStyle.Render(strings.Join(parts, " • "))
}
