// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"vtask/internal/intent"
	"vtask/internal/task"
)

// FakeTranslator is a scripted implementation of translator.Translator
// for testing. Intents can be keyed by utterance text or queued in order;
// queued intents win. Unmatched utterances come back as noop, like a
// model that did not understand.
type FakeTranslator struct {
	mu        sync.Mutex
	responses map[string]intent.Intent
	queue     []intent.Intent

	// Err is returned from every Parse call when set.
	Err error

	// LastText records the most recent utterance received.
	LastText string

	// LastVisible records the visible list passed with it.
	LastVisible []task.Task

	// Calls counts Parse invocations.
	Calls int
}

// NewFakeTranslator creates an empty fake.
func NewFakeTranslator() *FakeTranslator {
	return &FakeTranslator{responses: make(map[string]intent.Intent)}
}

// Respond maps an utterance to an intent.
func (f *FakeTranslator) Respond(text string, in intent.Intent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[text] = in
}

// Enqueue adds an intent returned by the next Parse call regardless of
// utterance text.
func (f *FakeTranslator) Enqueue(in intent.Intent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queue = append(f.queue, in)
}

// Parse implements translator.Translator.
func (f *FakeTranslator) Parse(ctx context.Context, text string, visible []task.Task) (intent.Intent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls++
	f.LastText = text
	f.LastVisible = visible

	if f.Err != nil {
		return intent.Intent{}, f.Err
	}
	if len(f.queue) > 0 {
		in := f.queue[0]
		f.queue = f.queue[1:]
		return in, nil
	}
	if in, ok := f.responses[text]; ok {
		return in, nil
	}
	return intent.Noop(), nil
}
