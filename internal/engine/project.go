// Package engine resolves structured voice intents and applies them to a
// task collection. All functions are pure: they never mutate their inputs
// and always return a displayable result, even for malformed intents.
//
// The store is unordered and unfiltered; what the user sees is a derived
// view. Ordinals in incoming intents refer to the view, so Resolve
// re-targets them onto store positions before Apply runs.
package engine

import (
	"slices"
	"strings"

	"vtask/internal/task"
)

// Project derives the user-visible sequence from the store and the active
// filter. Tasks passing the filter are ordered by priority (high, medium,
// low), then scheduled before unscheduled, then by scheduled time. The
// sort is stable: remaining ties keep store order. Called before every
// render and every index resolution, so it must be deterministic.
func Project(tasks []task.Task, filter task.Filter) []task.Task {
	visible := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Matches(t) {
			visible = append(visible, t)
		}
	}

	slices.SortStableFunc(visible, func(a, b task.Task) int {
		if d := task.PriorityRank(a.Priority) - task.PriorityRank(b.Priority); d != 0 {
			return d
		}
		switch {
		case a.ScheduledTime != "" && b.ScheduledTime != "":
			// Fixed-width UTC ISO strings order lexicographically.
			return strings.Compare(a.ScheduledTime, b.ScheduledTime)
		case a.ScheduledTime != "":
			return -1
		case b.ScheduledTime != "":
			return 1
		default:
			return 0
		}
	})

	return visible
}
