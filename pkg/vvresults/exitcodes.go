// Package vvresults provides public constants for external tools
// integrating with the vvresults CLI.
package vvresults

// Exit codes returned by the vvresults CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (unreadable input, failed export,
	// or failures found with --fail-on-failures).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config, bad flag value, etc.).
	ExitConfigError = 2

	// ExitDocumentError indicates that a results document could not be parsed.
	ExitDocumentError = 4
)
