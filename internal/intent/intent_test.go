package intent

import (
	"encoding/json"
	"testing"

	"vtask/internal/task"
)

func strp(s string) *string { return &s }

func TestSanitize_UnknownOperationRejected(t *testing.T) {
	in, ok := Sanitize(Intent{Operation: "archive"})

	if ok {
		t.Error("expected sanitize to reject unknown operation")
	}
	if in.Operation != OpNoop {
		t.Errorf("expected noop, got %s", in.Operation)
	}
}

func TestSanitize_UnknownTargetModeRejected(t *testing.T) {
	in, ok := Sanitize(Intent{
		Operation: OpDelete,
		Target:    &Target{Mode: "by_color"},
	})

	if ok {
		t.Error("expected sanitize to reject unknown target mode")
	}
	if in.Operation != OpNoop {
		t.Errorf("expected noop, got %s", in.Operation)
	}
}

func TestSanitize_EmptyTargetModeBecomesNil(t *testing.T) {
	in, ok := Sanitize(Intent{
		Operation: OpDelete,
		Target:    &Target{},
	})

	if !ok {
		t.Fatal("expected intent to be accepted")
	}
	if in.Target != nil {
		t.Error("expected empty-mode target to be dropped")
	}
}

func TestSanitize_CreateDropsStrayTarget(t *testing.T) {
	in, ok := Sanitize(Intent{
		Operation: OpCreate,
		Target:    &Target{Mode: ModeByIndex, Index: 2},
		Data:      Data{Title: strp("Buy milk")},
	})

	if !ok {
		t.Fatal("expected create to be accepted")
	}
	if in.Target != nil {
		t.Error("expected create target to be cleared")
	}
}

func TestSanitize_KnownOperationsPass(t *testing.T) {
	for _, op := range []string{OpCreate, OpUpdate, OpDelete, OpFilter, OpNoop} {
		if _, ok := Sanitize(Intent{Operation: op}); !ok {
			t.Errorf("operation %s unexpectedly rejected", op)
		}
	}
}

func TestPatch_DropsInvalidEnumValues(t *testing.T) {
	in := Intent{
		Operation: OpUpdate,
		Data: Data{
			Title:    strp("New title"),
			Priority: strp("urgent"),
			Status:   strp("archived"),
		},
	}

	p := in.Patch()

	if p.Title == nil || *p.Title != "New title" {
		t.Error("expected title to survive")
	}
	if p.Priority != nil {
		t.Error("expected invalid priority to be dropped")
	}
	if p.Status != nil {
		t.Error("expected invalid status to be dropped")
	}
}

func TestPatch_KeepsValidEnumValues(t *testing.T) {
	in := Intent{
		Data: Data{
			Priority: strp(task.PriorityHigh),
			Status:   strp(task.StatusDone),
		},
	}

	p := in.Patch()

	if p.Priority == nil || *p.Priority != task.PriorityHigh {
		t.Error("expected valid priority to survive")
	}
	if p.Status == nil || *p.Status != task.StatusDone {
		t.Error("expected valid status to survive")
	}
}

func TestDecode_TranslatorWireFormat(t *testing.T) {
	raw := `{
		"operation": "update",
		"target": {"mode": "by_index", "index": 2, "match_query": null},
		"data": {"title": null, "scheduledTime": null, "priority": null, "status": "done"}
	}`

	var in Intent
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if in.Operation != OpUpdate {
		t.Errorf("expected update, got %s", in.Operation)
	}
	if !in.ByIndex() || in.Target.Index != 2 {
		t.Error("expected by_index target with index 2")
	}
	if in.Data.Title != nil {
		t.Error("expected null title to decode as absent")
	}
	if in.Data.Status == nil || *in.Data.Status != "done" {
		t.Error("expected status done")
	}
}

func TestDecode_NullTargetAndMissingData(t *testing.T) {
	raw := `{"operation": "noop", "target": null}`

	var in Intent
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if in.Target != nil {
		t.Error("expected nil target")
	}
	if !in.Patch().IsZero() {
		t.Error("expected empty patch")
	}
}
