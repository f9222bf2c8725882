package errors

import (
	"errors"
	"fmt"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for configuration resolution and persistence.
// Callers check for them with [errors.Is]; packages attach context by
// marking wrapped causes onto these sentinels.
var (
	// ErrInvalidCommand indicates a command string is empty or malformed.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrValidationFailed indicates a registered validator rejected a
	// candidate command configuration.
	ErrValidationFailed = errors.New("validation failed")

	// ErrContextNotFound indicates the requested command context is not registered.
	ErrContextNotFound = errors.New("context not found")

	// ErrKeyNotFound indicates no configuration entry exists under the given key.
	ErrKeyNotFound = errors.New("config key not found")

	// ErrNoDefault indicates a context has entries but no resolvable default.
	ErrNoDefault = errors.New("no default configured")

	// ErrNoConfigForContext indicates a context has no stored configurations at all.
	ErrNoConfigForContext = errors.New("no config for context")

	// ErrInvalidPreCommand indicates a pre-command reference is self-referential
	// or names a key that does not exist.
	ErrInvalidPreCommand = errors.New("invalid pre-command")

	// ErrParseFailure indicates the persisted document could not be parsed.
	ErrParseFailure = errors.New("config parse failure")

	// ErrWriteFailure indicates the persisted document could not be written.
	ErrWriteFailure = errors.New("config write failure")
)

// ExitError wraps an error with an exit code and optional suggestion for CLI use.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: runr validate",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
