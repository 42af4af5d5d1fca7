package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"taskflow/internal/checklist"
	"taskflow/internal/model"
	"taskflow/internal/task"
)

const shortIDLen = 8

// storeNote is appended to the help of every command that writes the list.
// Each process loads the slot once, so a running server would overwrite the
// change with its next save.
const storeNote = "Stop any running `taskflow serve` or `taskflow tui` on the same storage dir first;\n" +
	"they keep their own copy of the list and overwrite the slot on their next change."

func tasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the task list from the command line",
		Long:  "Manage the task list from the command line.\n\n" + storeNote,
	}

	cmd.AddCommand(tasksListCmd())
	cmd.AddCommand(tasksAddCmd())
	cmd.AddCommand(tasksDoneCmd())
	cmd.AddCommand(tasksRmCmd())
	cmd.AddCommand(tasksClearCmd())
	cmd.AddCommand(tasksExportCmd())
	cmd.AddCommand(tasksImportCmd())

	return cmd
}

func tasksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, uc, err := openStore(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}
			return printList(cmd.OutOrStdout(), uc.List(cmd.Context()))
		},
	}
}

func tasksAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Append a task",
		Long:  "Append a task.\n\n" + storeNote,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, uc, err := openStore(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}
			out, err := uc.Add(cmd.Context(), task.AddInput{
				Title:       strings.Join(args, " "),
				Description: description,
			})
			if err != nil {
				return err
			}
			if !out.Changed {
				return fmt.Errorf("title must not be empty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", shortID(out.Task.ID), out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")

	return cmd
}

func tasksDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as completed",
		Long:  "Mark a task as completed.\n\n" + storeNote,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, _, uc, err := openStore(ctx, os.Stderr)
			if err != nil {
				return err
			}
			t, err := resolveTask(uc.List(ctx).Tasks, args[0])
			if err != nil {
				return err
			}
			done := true
			if _, err := uc.Edit(ctx, task.EditInput{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Completed:   &done,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed %s %s\n", shortID(t.ID), t.Title)
			return nil
		},
	}
}

func tasksRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long:  "Delete a task.\n\n" + storeNote,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, _, uc, err := openStore(ctx, os.Stderr)
			if err != nil {
				return err
			}
			t, err := resolveTask(uc.List(ctx).Tasks, args[0])
			if err != nil {
				return err
			}
			if _, err := uc.Delete(ctx, t.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", shortID(t.ID))
			return nil
		},
	}
}

func tasksClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every task",
		Long:  "Remove every task.\n\n" + storeNote,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, uc, err := openStore(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}
			return uc.Clear(cmd.Context())
		},
	}
}

func tasksExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list as JSON, YAML or a markdown checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, uc, err := openStore(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}
			return writeExport(cmd.OutOrStdout(), uc.List(cmd.Context()), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, yaml, markdown)")

	return cmd
}

func tasksImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.md>",
		Short: "Append tasks from a markdown checklist",
		Long:  "Append tasks from a markdown checklist.\n\n" + storeNote,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			_, _, uc, err := openStore(cmd.Context(), os.Stderr)
			if err != nil {
				return err
			}
			n, err := checklist.Import(cmd.Context(), uc, string(content))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks\n", n)
			return nil
		},
	}
}

// exportRecord is the exported shape of a task.
type exportRecord struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Completed   bool      `json:"completed" yaml:"completed"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

type exportDoc struct {
	Stats task.Stats     `json:"stats" yaml:"stats"`
	Tasks []exportRecord `json:"tasks" yaml:"tasks"`
}

func writeExport(w io.Writer, list task.ListOutput, format string) error {
	doc := exportDoc{
		Stats: list.Stats,
		Tasks: make([]exportRecord, len(list.Tasks)),
	}
	for i, t := range list.Tasks {
		doc.Tasks[i] = exportRecord(t)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "markdown", "md":
		_, err := io.WriteString(w, checklist.Render(list.Tasks))
		return err
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or markdown)", format)
	}
}

func printList(w io.Writer, list task.ListOutput) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tTITLE\tDESCRIPTION")
	for _, t := range list.Tasks {
		title := t.Title
		if t.IsPlaceholder() {
			title = "(empty)"
		}
		done := " "
		if t.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%s\t[%s]\t%s\t%s\n", shortID(t.ID), done, title, t.Description)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d of %d completed (%d%%)\n", list.Stats.Completed, list.Stats.Total, list.Stats.Percentage)
	return err
}

// resolveTask finds the task whose id equals or uniquely starts with ref.
func resolveTask(tasks []model.Task, ref string) (model.Task, error) {
	var matches []model.Task
	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return model.Task{}, fmt.Errorf("no task matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return model.Task{}, fmt.Errorf("%q matches %d tasks, use a longer id", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

