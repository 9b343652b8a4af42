// Package errors provides structured error types and exit codes for vvresults.
package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess       = 0 // Success
	ExitRuntimeError  = 1 // Runtime error (unreadable input, failed export, etc.)
	ExitConfigError   = 2 // Configuration error (invalid config, bad flag value, etc.)
	ExitDocumentError = 4 // Results document could not be parsed
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindDocument
)

// VVError is the base error type for vvresults.
type VVError struct {
	Kind    ErrorKind
	Message string
	Path    string // File the error refers to, if any
	Cause   error
}

func (e *VVError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *VVError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *VVError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindDocument:
		return ExitDocumentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *VVError {
	return &VVError{Kind: KindRuntime, Message: message}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *VVError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *VVError {
	return &VVError{Kind: KindConfig, Message: message}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *VVError {
	return Config(fmt.Sprintf(format, args...))
}

// Document creates an error for a results document that cannot be parsed.
func Document(message string, cause error) *VVError {
	return &VVError{Kind: KindDocument, Message: message, Cause: cause}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *VVError {
	return &VVError{Kind: KindRuntime, Message: message, Cause: err}
}

// WithPath returns a copy of err annotated with the file it refers to.
func WithPath(err error, path string) error {
	var ve *VVError
	if !errors.As(err, &ve) {
		return &VVError{Kind: KindRuntime, Message: "failed", Path: path, Cause: err}
	}
	annotated := *ve
	annotated.Path = path
	return &annotated
}

// NotFound creates a not found error.
func NotFound(what, name string) *VVError {
	return &VVError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsKind reports whether err is a VVError of the given kind anywhere in its chain.
func IsKind(err error, kind ErrorKind) bool {
	var ve *VVError
	if errors.As(err, &ve) {
		return ve.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ve *VVError
	if errors.As(err, &ve) {
		return ve.ExitCode()
	}
	return ExitRuntimeError
}
