package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"vtask/internal/commands"
	"vtask/internal/config"
	"vtask/internal/exitcode"
	"vtask/internal/intent"
	"vtask/internal/testutil"
	"vtask/internal/translator"
)

// runCommand is a helper to run a command with a fake translator.
func runCommand(t *testing.T, cmd commands.Command, tr translator.Translator, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, tr, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "vtask 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
	if !strings.Contains(stdout, "repl") || !strings.Contains(stdout, "serve") {
		t.Error("help output should list the commands")
	}
}

func TestParseCommand(t *testing.T) {
	tr := testutil.NewFakeTranslator()
	tr.Respond("delete task 2", intent.Intent{
		Operation: intent.OpDelete,
		Target:    &intent.Target{Mode: intent.ModeByIndex, Index: 2},
	})

	cmd := &commands.ParseCmd{}
	stdout, stderr, code := runCommand(t, cmd, tr, []string{"delete", "tusk", "2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, `"operation": "delete"`) {
		t.Errorf("expected intent JSON, got %q", stdout)
	}
	// Args are joined and normalized before translation.
	if tr.LastText != "delete task 2" {
		t.Errorf("expected normalized utterance, got %q", tr.LastText)
	}
}

func TestParseCommand_RequiresUtterance(t *testing.T) {
	cmd := &commands.ParseCmd{}

	stdout, stderr, code := runCommand(t, cmd, testutil.NewFakeTranslator(), nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if stderr != "error: utterance required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestParseCommand_BackendError(t *testing.T) {
	tr := testutil.NewFakeTranslator()
	tr.Err = errors.New("connection refused")

	cmd := &commands.ParseCmd{}
	_, stderr, code := runCommand(t, cmd, tr, []string{"delete", "task", "2"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "backend error") {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestReplCommand_DeleteByMatch(t *testing.T) {
	tr := testutil.NewFakeTranslator()
	tr.Respond("delete the payment task", intent.Intent{
		Operation: intent.OpDelete,
		Target:    &intent.Target{Mode: intent.ModeByMatch, MatchQuery: "payment"},
	})

	cmd := &commands.ReplCmd{}
	cmd.SetInput(strings.NewReader("delete the payment task\n"))

	stdout, stderr, code := runCommand(t, cmd, tr, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "repl_delete_by_match", stdout)
}

func TestReplCommand_ExitStopsLoop(t *testing.T) {
	tr := testutil.NewFakeTranslator()

	cmd := &commands.ReplCmd{}
	cmd.SetInput(strings.NewReader("exit\ndelete task 1\n"))

	_, _, code := runCommand(t, cmd, tr, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if tr.Calls != 0 {
		t.Errorf("expected no translator calls after exit, got %d", tr.Calls)
	}
}

func TestReplCommand_BackendErrorKeepsListening(t *testing.T) {
	tr := testutil.NewFakeTranslator()
	tr.Err = errors.New("connection refused")

	cmd := &commands.ReplCmd{}
	cmd.SetInput(strings.NewReader("delete task 1\ndelete task 2\n"))

	_, stderr, code := runCommand(t, cmd, tr, nil, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if tr.Calls != 2 {
		t.Errorf("expected the loop to continue after an error, got %d calls", tr.Calls)
	}
	if strings.Count(stderr, "backend error") != 2 {
		t.Errorf("expected two error reports, got %q", stderr)
	}
}

func TestReplCommand_SummaryShownWhenNotQuiet(t *testing.T) {
	tr := testutil.NewFakeTranslator()
	tr.Enqueue(intent.Intent{Operation: "archive"})

	cmd := &commands.ReplCmd{}
	cmd.SetInput(strings.NewReader("archive everything\n"))

	stdout, _, _ := runCommand(t, cmd, tr, nil, false)

	if !strings.Contains(stdout, "-- ignored invalid command") {
		t.Errorf("expected ignored summary in output, got %q", stdout)
	}
}
