package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"vtask/internal/intent"
	"vtask/internal/task"
)

// IgnoredSummary is reported when an intent is rejected instead of applied.
const IgnoredSummary = "ignored invalid command"

// Outcome describes what Apply did, for display to the user.
type Outcome struct {
	Changed bool
	Summary string
}

// Apply executes a resolved intent against the store and returns the new
// store contents. The input slice is never mutated: mutations build a
// fresh slice, and no-op paths hand the input back unchanged. Index
// targets are taken as store-relative ordinals, so view-relative intents
// must go through Resolve first.
func Apply(tasks []task.Task, in intent.Intent) ([]task.Task, Outcome) {
	switch in.Operation {
	case intent.OpCreate:
		return applyCreate(tasks, in)
	case intent.OpDelete:
		return applyDelete(tasks, in)
	case intent.OpUpdate:
		return applyUpdate(tasks, in)
	case intent.OpFilter, intent.OpNoop:
		// Filtering is view state handled by the caller, not a store
		// mutation.
		return tasks, Outcome{Summary: "nothing to change"}
	default:
		return tasks, Outcome{Summary: IgnoredSummary}
	}
}

func applyCreate(tasks []task.Task, in intent.Intent) ([]task.Task, Outcome) {
	t := task.Task{
		ID:       uuid.NewString(),
		Title:    task.DefaultTitle,
		Priority: task.PriorityLow,
		Status:   task.StatusPending,
	}
	t = in.Patch().Apply(t)
	if strings.TrimSpace(t.Title) == "" {
		t.Title = task.DefaultTitle
	}

	out := make([]task.Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	out = append(out, t)
	return out, Outcome{Changed: true, Summary: fmt.Sprintf("created %q", t.Title)}
}

func applyDelete(tasks []task.Task, in intent.Intent) ([]task.Task, Outcome) {
	switch {
	case in.ByIndex():
		i, ok := NormalizeIndex(in.Target.Index, len(tasks))
		if !ok {
			return tasks, Outcome{Summary: "nothing to delete"}
		}
		title := tasks[i].Title
		out := slices.Delete(slices.Clone(tasks), i, i+1)
		return out, Outcome{Changed: true, Summary: fmt.Sprintf("deleted %q", title)}

	case in.ByMatch():
		query := in.Target.MatchQuery
		if strings.TrimSpace(query) == "" {
			return tasks, Outcome{Summary: "nothing to delete"}
		}
		out := make([]task.Task, 0, len(tasks))
		removed := 0
		for _, t := range tasks {
			if Matches(t.Title, query) {
				removed++
				continue
			}
			out = append(out, t)
		}
		if removed == 0 {
			return tasks, Outcome{Summary: fmt.Sprintf("no task matches %q", query)}
		}
		return out, Outcome{Changed: true, Summary: fmt.Sprintf("deleted %d matching %q", removed, query)}

	case in.TargetsAll():
		return []task.Task{}, Outcome{Changed: true, Summary: "deleted all tasks"}

	default:
		return tasks, Outcome{Summary: "nothing to delete"}
	}
}

func applyUpdate(tasks []task.Task, in intent.Intent) ([]task.Task, Outcome) {
	patch := in.Patch()

	switch {
	case in.ByIndex():
		i, ok := NormalizeIndex(in.Target.Index, len(tasks))
		if !ok {
			return tasks, Outcome{Summary: "nothing to update"}
		}
		out := slices.Clone(tasks)
		out[i] = patch.Apply(out[i])
		return out, Outcome{Changed: true, Summary: fmt.Sprintf("updated %q", out[i].Title)}

	case in.ByMatch():
		// Apply-once: only the first match in store order is touched.
		// Mass-editing on an ambiguous voice command is worse than
		// editing the wrong single task.
		for i, t := range tasks {
			if Matches(t.Title, in.Target.MatchQuery) {
				out := slices.Clone(tasks)
				out[i] = patch.Apply(out[i])
				return out, Outcome{Changed: true, Summary: fmt.Sprintf("updated %q", out[i].Title)}
			}
		}
		return tasks, Outcome{Summary: fmt.Sprintf("no task matches %q", in.Target.MatchQuery)}

	default:
		return tasks, Outcome{Summary: "nothing to update"}
	}
}
