// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command).
	UserError = 1

	// AuthError indicates a missing or rejected API key.
	AuthError = 2

	// BackendError indicates a model API or network error.
	BackendError = 3
)
