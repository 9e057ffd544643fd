package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"vtask/internal/config"
	"vtask/internal/exitcode"
	"vtask/internal/output"
	"vtask/internal/session"
	"vtask/internal/translator"
)

func init() {
	Register(&ReplCmd{})
}

// ReplCmd implements the interactive session: utterances are read line by
// line, translated and applied, and the visible list is reprinted after
// each one. State lives only for the lifetime of the loop.
type ReplCmd struct {
	in io.Reader
}

// SetInput overrides the input stream (for testing).
func (c *ReplCmd) SetInput(r io.Reader) {
	c.in = r
}

func (c *ReplCmd) Name() string          { return "repl" }
func (c *ReplCmd) Aliases() []string     { return nil }
func (c *ReplCmd) Synopsis() string      { return "Start an interactive session" }
func (c *ReplCmd) Usage() string         { return "vtask repl" }
func (c *ReplCmd) NeedsTranslator() bool { return true }

func (c *ReplCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReplCmd) Run(ctx context.Context, cfg *config.Config, tr translator.Translator, args []string, out, errOut io.Writer) int {
	in := c.in
	if in == nil {
		in = os.Stdin
	}

	sess := session.New(tr)
	output.FormatTasks(out, sess.Visible())

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return exitcode.Success
		}

		if !cfg.Quiet {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}

		if err := sess.HandleUtterance(ctx, text); err != nil {
			// Store is untouched; report and keep listening.
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			continue
		}

		if !cfg.Quiet {
			output.FormatSummary(out, sess.Summary())
		}
		output.FormatTasks(out, sess.Visible())
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
