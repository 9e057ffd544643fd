// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"vtask/internal/config"
	"vtask/internal/translator"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsTranslator returns true if the command talks to the
	// language-understanding service. Commands like help and version
	// return false.
	NeedsTranslator() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, model settings).
	// tr is nil if NeedsTranslator() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, tr translator.Translator, args []string, out, errOut io.Writer) int
}
