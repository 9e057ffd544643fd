// Package translator defines the boundary to the external
// language-understanding service that turns utterance text into
// structured intents. Commands and the session never speak to the model
// API directly, only through the Translator interface.
package translator

import (
	"context"

	"vtask/internal/intent"
	"vtask/internal/task"
)

// Translator converts a normalized utterance into a structured intent.
// The visible task list is provided for context so the service can ground
// ordinal and fuzzy references; implementations may ignore it. Responses
// are untrusted and callers must sanitize the returned intent before
// applying it.
type Translator interface {
	Parse(ctx context.Context, text string, visible []task.Task) (intent.Intent, error)
}
