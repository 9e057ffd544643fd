package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vtask/internal/intent"
	"vtask/internal/testutil"
)

func strp(s string) *string { return &s }

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv := New(testutil.NewFakeTranslator(), false)

	w := doJSON(t, srv, http.MethodGet, "/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestTasks_ReturnsSeededList(t *testing.T) {
	srv := New(testutil.NewFakeTranslator(), false)

	w := doJSON(t, srv, http.MethodGet, "/tasks", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Tasks   []taskJSON `json:"tasks"`
		Summary string     `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp.Tasks) == 0 {
		t.Error("expected seeded tasks")
	}
	for _, tk := range resp.Tasks {
		if tk.ID == "" || tk.Title == "" {
			t.Errorf("incomplete task on the wire: %+v", tk)
		}
	}
}

func TestParseIntent_TranslatesWithoutMutating(t *testing.T) {
	tr := testutil.NewFakeTranslator()
	tr.Respond("delete task 2", intent.Intent{
		Operation: intent.OpDelete,
		Target:    &intent.Target{Mode: intent.ModeByIndex, Index: 2},
	})
	srv := New(tr, false)

	w := doJSON(t, srv, http.MethodPost, "/parse-intent", `{"text":"delete tusk 2"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Intent intent.Intent `json:"intent"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if resp.Intent.Operation != intent.OpDelete {
		t.Errorf("expected delete, got %s", resp.Intent.Operation)
	}
	// The homophone pre-pass ran before translation.
	if tr.LastText != "delete task 2" {
		t.Errorf("expected normalized text, got %q", tr.LastText)
	}

	// Translate-only: the session's store is untouched.
	tasks := doJSON(t, srv, http.MethodGet, "/tasks", "")
	var after struct {
		Tasks []taskJSON `json:"tasks"`
	}
	json.Unmarshal(tasks.Body.Bytes(), &after)
	if len(after.Tasks) != 3 {
		t.Errorf("expected 3 seeded tasks, got %d", len(after.Tasks))
	}
}

func TestCommand_AppliesAndReturnsView(t *testing.T) {
	tr := testutil.NewFakeTranslator()
	tr.Respond("create a task to buy milk", intent.Intent{
		Operation: intent.OpCreate,
		Data:      intent.Data{Title: strp("Buy milk")},
	})
	srv := New(tr, false)

	w := doJSON(t, srv, http.MethodPost, "/command", `{"text":"create a task to buy milk"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Tasks   []taskJSON `json:"tasks"`
		Summary string     `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp.Tasks) != 4 {
		t.Errorf("expected 4 tasks after create, got %d", len(resp.Tasks))
	}
	if resp.Summary != `created "Buy milk"` {
		t.Errorf("unexpected summary: %q", resp.Summary)
	}
}

func TestCommand_TranslatorFailureLeavesSessionUntouched(t *testing.T) {
	tr := testutil.NewFakeTranslator()
	tr.Err = errors.New("connection refused")
	srv := New(tr, false)

	w := doJSON(t, srv, http.MethodPost, "/command", `{"text":"delete task 1"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	tr.Err = nil
	tasks := doJSON(t, srv, http.MethodGet, "/tasks", "")
	var after struct {
		Tasks []taskJSON `json:"tasks"`
	}
	json.Unmarshal(tasks.Body.Bytes(), &after)
	if len(after.Tasks) != 3 {
		t.Errorf("expected 3 seeded tasks, got %d", len(after.Tasks))
	}
}

func TestCommand_RejectsBadRequests(t *testing.T) {
	srv := New(testutil.NewFakeTranslator(), false)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"text":`},
		{"missing text", `{}`},
		{"too long", `{"text":"` + strings.Repeat("a", maxUtteranceSize+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, srv, http.MethodPost, "/command", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := New(testutil.NewFakeTranslator(), false)

	w := doJSON(t, srv, http.MethodOptions, "/command", "")

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}
