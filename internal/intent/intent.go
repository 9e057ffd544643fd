// Package intent defines the structured command produced by the external
// language-understanding service, plus the sanitization applied to it.
// Translator responses are untrusted: unknown operations, absent targets
// and null data fields must all decode into something the engine can
// apply without crashing.
package intent

import "vtask/internal/task"

// Operations recognized by the engine. Anything else is downgraded to
// OpNoop during sanitization.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpFilter = "filter"
	OpNoop   = "noop"
)

// Target selector modes.
const (
	ModeByIndex = "by_index"
	ModeByMatch = "by_match"
	ModeAll     = "all"
)

// Target selects which task(s) an intent acts on. A nil Target means the
// intent has no target (required for create, ignored elsewhere).
type Target struct {
	Mode       string `json:"mode"`
	Index      int    `json:"index,omitempty"`
	MatchQuery string `json:"match_query,omitempty"`
}

// Data is the wire form of the partial field set. Pointer fields
// distinguish "absent" from "set to empty".
type Data struct {
	Title         *string `json:"title"`
	ScheduledTime *string `json:"scheduledTime"`
	Priority      *string `json:"priority"`
	Status        *string `json:"status"`
}

// Intent is a single structured command.
type Intent struct {
	Operation string  `json:"operation"`
	Target    *Target `json:"target"`
	Data      Data    `json:"data"`
}

// Noop returns an intent that leaves the store unchanged.
func Noop() Intent {
	return Intent{Operation: OpNoop}
}

// ByIndex reports whether the intent targets a task by ordinal.
func (in Intent) ByIndex() bool {
	return in.Target != nil && in.Target.Mode == ModeByIndex
}

// ByMatch reports whether the intent targets tasks by fuzzy title match.
func (in Intent) ByMatch() bool {
	return in.Target != nil && in.Target.Mode == ModeByMatch
}

// TargetsAll reports whether the intent targets every task.
func (in Intent) TargetsAll() bool {
	return in.Target != nil && in.Target.Mode == ModeAll
}

// Patch converts the wire data into the engine's patch form, dropping
// values that fail validation (an unknown priority or status from the
// translator must not end up stored).
func (in Intent) Patch() task.Patch {
	var p task.Patch
	p.Title = in.Data.Title
	p.ScheduledTime = in.Data.ScheduledTime
	if in.Data.Priority != nil && task.ValidPriority(*in.Data.Priority) {
		p.Priority = in.Data.Priority
	}
	if in.Data.Status != nil && task.ValidStatus(*in.Data.Status) {
		p.Status = in.Data.Status
	}
	return p
}

// Sanitize normalizes an intent decoded from an untrusted translator
// response. It returns the cleaned intent and whether the original was
// recognized; unrecognized input comes back as a noop so callers can
// report "ignored invalid command" instead of failing.
func Sanitize(in Intent) (Intent, bool) {
	switch in.Operation {
	case OpCreate, OpUpdate, OpDelete, OpFilter, OpNoop:
	default:
		return Noop(), false
	}

	if in.Target != nil {
		switch in.Target.Mode {
		case ModeByIndex, ModeByMatch, ModeAll:
		case "":
			in.Target = nil
		default:
			return Noop(), false
		}
	}

	// Create acts on no target; the translator is told to send null but
	// occasionally does not.
	if in.Operation == OpCreate {
		in.Target = nil
	}

	return in, true
}
