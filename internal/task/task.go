// Package task defines the task data model shared by the engine and its callers.
package task

// Priority levels in display order: High sorts before Medium before Low.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task statuses.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// DefaultTitle is used when a create intent carries no title.
const DefaultTitle = "Untitled task"

// Task represents a single task item.
// ID is assigned at creation and never reused or mutated; every other
// field may change through an update.
type Task struct {
	ID            string
	Title         string
	ScheduledTime string // ISO 8601 UTC, empty means unscheduled
	Priority      string // "high", "medium" or "low"
	Status        string // "pending" or "done"
}

// Filter restricts the visible sequence. An empty Priority means
// unrestricted.
type Filter struct {
	Priority string
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t Task) bool {
	return f.Priority == "" || f.Priority == t.Priority
}

// ValidPriority reports whether p is a recognized priority value.
func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// ValidStatus reports whether s is a recognized status value.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusDone
}

// PriorityRank returns the sort rank of a priority: high < medium < low.
// Unknown values rank after low so malformed records sink to the bottom
// instead of breaking the sort.
func PriorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}
