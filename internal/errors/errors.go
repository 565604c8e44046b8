package errors

import (
	"errors"
	"fmt"
)

// Exit codes for spaces
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitIOError      = 2
	ExitParseError   = 3
	ExitVCSError     = 4
	ExitConfigError  = 5
)

// SpacesError is the base error type for spaces
type SpacesError struct {
	Code    int
	Message string
	Cause   error
}

func (e *SpacesError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SpacesError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *SpacesError) ExitCode() int {
	return e.Code
}

// New creates a new SpacesError
func New(code int, message string) *SpacesError {
	return &SpacesError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a SpacesError
func Wrap(code int, message string, cause error) *SpacesError {
	return &SpacesError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// IOFailure returns an error for filesystem operations or external
// processes that could not be started
func IOFailure(message string, cause error) *SpacesError {
	return Wrap(ExitIOError, message, cause)
}

// ParseFailure returns an error for a malformed repository location or
// credential injection
func ParseFailure(message string, cause error) *SpacesError {
	return Wrap(ExitParseError, message, cause)
}

// VCSFailure returns an error for a version-control process that exited
// non-zero
func VCSFailure(message string, cause error) *SpacesError {
	return Wrap(ExitVCSError, message, cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *SpacesError {
	return Wrap(ExitConfigError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *SpacesError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var spacesErr *SpacesError
	if errors.As(err, &spacesErr) {
		return spacesErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

// HasCode reports whether err carries a SpacesError with the given code
func HasCode(err error, code int) bool {
	var spacesErr *SpacesError
	return errors.As(err, &spacesErr) && spacesErr.Code == code
}
