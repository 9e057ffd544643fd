// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"vtask/internal/task"
)

// FormatTask formats one visible task line.
// Format: "{N:>4}  [{PRIORITY}] {TITLE}" plus "@ {TIME}" when scheduled
// and "(done)" when completed.
func FormatTask(w io.Writer, num int, t task.Task) {
	line := fmt.Sprintf("%4d  [%s] %s", num, t.Priority, normalizeTitle(t.Title))
	if t.ScheduledTime != "" {
		line += " @ " + t.ScheduledTime
	}
	if t.Status == task.StatusDone {
		line += " (done)"
	}
	fmt.Fprintln(w, line)
}

// FormatTasks formats the whole visible sequence, numbering from 1.
// Writes "no tasks" when the sequence is empty.
func FormatTasks(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}
	for i, t := range tasks {
		FormatTask(w, i+1, t)
	}
}

// FormatSummary formats the last-action summary line.
func FormatSummary(w io.Writer, summary string) {
	fmt.Fprintf(w, "-- %s\n", summary)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
