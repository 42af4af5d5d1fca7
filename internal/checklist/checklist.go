// Package checklist converts between the task list and markdown checklists
// ("- [ ] title" / "- [x] title").
package checklist

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"taskflow/internal/model"
	"taskflow/internal/task"
)

const (
	CheckboxUnchecked = `- [ ]`
	CheckboxChecked   = `- [x]`
	// Captures indent, checkbox state and text.
	// "  - [x] Task name" -> ["  ", "x", "Task name"]
	CheckboxPattern = `(?m)^([ \t]*)[-*] \[([ xX])\] (.+)$`
)

var (
	checkboxRe   = regexp.MustCompile(CheckboxPattern)
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
)

// Checkbox is a single checklist line.
type Checkbox struct {
	Indent  string
	Checked bool
	Text    string
}

// sanitizeContent drops fenced code blocks so examples inside them are not
// parsed. Inline code stays part of the item text.
func sanitizeContent(content string) string {
	return fencedCodeRe.ReplaceAllString(content, "")
}

// Parse extracts every checkbox from markdown content in order.
func Parse(content string) []Checkbox {
	matches := checkboxRe.FindAllStringSubmatch(sanitizeContent(content), -1)
	checkboxes := make([]Checkbox, 0, len(matches))
	for _, match := range matches {
		text := strings.TrimSpace(match[3])
		if text == "" {
			continue
		}
		checkboxes = append(checkboxes, Checkbox{
			Indent:  match[1],
			Checked: strings.ToLower(match[2]) == "x",
			Text:    text,
		})
	}
	return checkboxes
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Render writes tasks as a markdown checklist. Placeholders have no title
// and are skipped. A description follows the title after " - ".
func Render(tasks []model.Task) string {
	var b strings.Builder
	for _, t := range tasks {
		if t.IsPlaceholder() {
			continue
		}
		state := CheckboxUnchecked
		if t.Completed {
			state = CheckboxChecked
		}
		line := state + " " + oneLine(t.Title)
		if desc := oneLine(t.Description); desc != "" {
			line += " - " + desc
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// Import appends one task per checkbox, completed when checked. It returns
// the number of tasks added.
func Import(ctx context.Context, uc task.UseCase, content string) (int, error) {
	added := 0
	for _, cb := range Parse(content) {
		out, err := uc.Add(ctx, task.AddInput{Title: cb.Text})
		if err != nil {
			return added, fmt.Errorf("checklist.Import Add: %w", err)
		}
		if !out.Changed {
			continue
		}
		added++
		if cb.Checked {
			if _, err := uc.ToggleCompletion(ctx, out.Task.ID); err != nil {
				return added, fmt.Errorf("checklist.Import ToggleCompletion: %w", err)
			}
		}
	}
	return added, nil
}
