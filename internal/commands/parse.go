package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"vtask/internal/config"
	"vtask/internal/exitcode"
	"vtask/internal/translator"
)

func init() {
	Register(&ParseCmd{})
}

// ParseCmd implements the parse command: one utterance in, the structured
// intent out. Useful for checking what the model makes of a phrasing
// without touching any session state.
type ParseCmd struct{}

func (c *ParseCmd) Name() string          { return "parse" }
func (c *ParseCmd) Aliases() []string     { return nil }
func (c *ParseCmd) Synopsis() string      { return "Print the parsed intent for an utterance" }
func (c *ParseCmd) Usage() string         { return "vtask parse <utterance...>" }
func (c *ParseCmd) NeedsTranslator() bool { return true }

func (c *ParseCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ParseCmd) Run(ctx context.Context, cfg *config.Config, tr translator.Translator, args []string, out, errOut io.Writer) int {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: utterance required")
		return exitcode.UserError
	}

	in, err := tr.Parse(ctx, translator.NormalizeUtterance(text), nil)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	encoded, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	fmt.Fprintln(out, string(encoded))
	return exitcode.Success
}
