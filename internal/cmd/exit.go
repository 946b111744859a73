// Package cmd provides CLI command implementations.
package cmd

// Exit codes. Both tools signal failure through the exit code alone:
// diagnostics carry the detail, the code only says pass or fail.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates the command failed: a missing templates
	// root, a failed validation, or any other error.
	ExitGeneralError = 1
)
