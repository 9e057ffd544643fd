package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"vtask/internal/config"
	"vtask/internal/exitcode"
	"vtask/internal/server"
	"vtask/internal/translator"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd implements the serve command: the HTTP front for the engine,
// replacing direct terminal interaction. One session per process.
type ServeCmd struct {
	addr string
}

func (c *ServeCmd) Name() string          { return "serve" }
func (c *ServeCmd) Aliases() []string     { return nil }
func (c *ServeCmd) Synopsis() string      { return "Serve the HTTP command API" }
func (c *ServeCmd) Usage() string         { return "vtask serve [--addr <host:port>]" }
func (c *ServeCmd) NeedsTranslator() bool { return true }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "", "")
}

func (c *ServeCmd) Run(ctx context.Context, cfg *config.Config, tr translator.Translator, args []string, out, errOut io.Writer) int {
	addr := c.addr
	if addr == "" {
		addr = cfg.ListenAddr
	}

	srv := server.New(tr, cfg.Debug)
	if !cfg.Quiet {
		fmt.Fprintf(out, "listening on %s\n", addr)
	}

	if err := srv.Run(ctx, addr); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.BackendError
	}
	return exitcode.Success
}
