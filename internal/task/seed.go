package task

import "github.com/google/uuid"

// Seed returns the fixed starter set a new session begins with. Ids are
// freshly generated so two sessions never share them; there is no backing
// store that survives a restart.
func Seed() []Task {
	return []Task{
		{
			ID:            uuid.NewString(),
			Title:         "Review quarterly report",
			ScheduledTime: "2025-11-20T09:00:00Z",
			Priority:      PriorityHigh,
			Status:        StatusPending,
		},
		{
			ID:       uuid.NewString(),
			Title:    "Fix payment gateway bug",
			Priority: PriorityMedium,
			Status:   StatusPending,
		},
		{
			ID:       uuid.NewString(),
			Title:    "Buy groceries",
			Priority: PriorityLow,
			Status:   StatusPending,
		},
	}
}
