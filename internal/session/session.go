// Package session owns the task store for one interactive session and
// drives the utterance cycle: normalize, translate, resolve, apply. The
// engine's functions are pure; the session is the single writer that
// adopts the snapshots they return.
package session

import (
	"context"
	"fmt"

	"vtask/internal/engine"
	"vtask/internal/intent"
	"vtask/internal/task"
	"vtask/internal/translator"
)

// Session holds the in-memory task collection, the active filter and the
// last-action summary. It is not safe for concurrent use: the caller must
// serialize utterances, and a new one must not start while another is in
// flight.
type Session struct {
	tr      translator.Translator
	tasks   []task.Task
	filter  task.Filter
	summary string
}

// New creates a session seeded with the default task set.
func New(tr translator.Translator) *Session {
	return &Session{
		tr:      tr,
		tasks:   task.Seed(),
		summary: "ready",
	}
}

// Visible returns the current user-facing sequence.
func (s *Session) Visible() []task.Task {
	return engine.Project(s.tasks, s.filter)
}

// Filter returns the active view filter.
func (s *Session) Filter() task.Filter {
	return s.filter
}

// Summary returns a human-readable description of the last applied
// operation, or of why the last command was ignored.
func (s *Session) Summary() string {
	return s.summary
}

// HandleUtterance runs one full cycle for a spoken command. On a
// translator failure the store is left untouched, the summary reports a
// backend error and the error is returned so the caller can surface it;
// the session stays usable for the next utterance. Every other path
// degrades to a noop with an informational summary rather than an error.
func (s *Session) HandleUtterance(ctx context.Context, text string) error {
	text = translator.NormalizeUtterance(text)

	in, err := s.tr.Parse(ctx, text, s.Visible())
	if err != nil {
		s.summary = "backend error, try again"
		return fmt.Errorf("parse intent: %w", err)
	}

	s.Dispatch(in)
	return nil
}

// Dispatch sanitizes and executes an already-translated intent. Exposed
// separately so transports that receive structured intents can bypass the
// translator round trip.
func (s *Session) Dispatch(in intent.Intent) {
	in, ok := intent.Sanitize(in)
	if !ok {
		s.summary = engine.IgnoredSummary
		return
	}

	if in.Operation == intent.OpFilter {
		s.applyFilter(in)
		return
	}

	resolved := engine.Resolve(in, s.tasks, s.filter)
	next, outcome := engine.Apply(s.tasks, resolved)
	s.tasks = next
	s.summary = outcome.Summary
}

// applyFilter updates view state only; the store passes through unchanged.
func (s *Session) applyFilter(in intent.Intent) {
	if p := in.Data.Priority; p != nil && task.ValidPriority(*p) {
		s.filter = task.Filter{Priority: *p}
		s.summary = fmt.Sprintf("showing %s priority tasks", *p)
		return
	}
	s.filter = task.Filter{}
	s.summary = "showing all tasks"
}
