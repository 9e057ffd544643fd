package engine

import (
	"strconv"

	"vtask/internal/intent"
	"vtask/internal/task"
)

// Resolve translates a view-relative ordinal into a store-relative one.
// The user says "task 2" about the list they see, which is filtered and
// sorted; the store is neither. Resolve projects the current view, finds
// the stable id at the spoken ordinal, and rewrites the intent to address
// that id's position in the store. Positions in the view are not stable
// across mutations, so acting on the view ordinal directly would hit the
// wrong task.
//
// An ordinal outside the visible range downgrades the whole intent to a
// noop rather than surfacing an error: the translator sometimes
// hallucinates an index past the end of the list. If the selected id is
// somehow missing from the store the intent is returned unmodified.
func Resolve(in intent.Intent, tasks []task.Task, filter task.Filter) intent.Intent {
	if !in.ByIndex() {
		return in
	}

	visible := Project(tasks, filter)

	idx := in.Target.Index - 1
	if idx < 0 || idx >= len(visible) {
		return intent.Noop()
	}

	id := visible[idx].ID
	for pos, t := range tasks {
		if t.ID == id {
			out := in
			out.Target = &intent.Target{Mode: intent.ModeByIndex, Index: pos + 1}
			return out
		}
	}

	return in
}

// NormalizeIndex interprets raw as a 1-based ordinal into a collection of
// length n and returns the 0-based position. When raw is out of range but
// has more than one decimal digit, its first digit is retried as the
// ordinal: the translator occasionally emits "12" for a three-item list
// when the user meant "1". Returns ok=false when neither reading is in
// range; callers must then leave the store untouched.
func NormalizeIndex(raw, n int) (int, bool) {
	if raw >= 1 && raw <= n {
		return raw - 1, true
	}
	if raw >= 10 {
		first := int(strconv.Itoa(raw)[0] - '0')
		if first >= 1 && first <= n {
			return first - 1, true
		}
	}
	return 0, false
}
