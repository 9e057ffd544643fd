package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"vtask/internal/config"
	"vtask/internal/exitcode"
	"vtask/internal/translator"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string          { return "help" }
func (c *HelpCmd) Aliases() []string     { return nil }
func (c *HelpCmd) Synopsis() string      { return "Print usage" }
func (c *HelpCmd) Usage() string         { return "vtask help" }
func (c *HelpCmd) NeedsTranslator() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, tr translator.Translator, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  vtask                          Start an interactive session (alias for repl)
  vtask repl [common flags]      Read commands line by line and apply them
  vtask parse [common flags] <utterance...>
                                 Print the parsed intent for an utterance
  vtask serve [common flags] [--addr <host:port>]
                                 Serve the HTTP command API
  vtask help
  vtask version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

The model API key is read from OPENAI_API_KEY, or from the api_key file
in the config directory.
`
