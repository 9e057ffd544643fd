package task

// Patch is a partial field set applied by create and update intents.
// Each field is a pointer: nil means "leave the original value alone",
// non-nil means "replace it". Apply is the only merge path, so per-field
// precedence lives in exactly one place.
type Patch struct {
	Title         *string
	ScheduledTime *string
	Priority      *string
	Status        *string
}

// IsZero reports whether the patch carries no fields at all.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.ScheduledTime == nil && p.Priority == nil && p.Status == nil
}

// Apply merges the patch into t and returns the result. Patch values win
// when present; the original field is retained otherwise. The ID is never
// touched.
func (p Patch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.ScheduledTime != nil {
		t.ScheduledTime = *p.ScheduledTime
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}
