package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scripting integration.
// These codes allow scripts to distinguish between different failure modes.
const (
	// ExitSuccess indicates the run completed.
	ExitSuccess = 0

	// ExitOutdated indicates outdated packages were found while fail_on_outdated is enabled.
	ExitOutdated = 1

	// ExitFailure indicates a fatal error such as a missing or unreadable lockfile.
	ExitFailure = 2

	// ExitConfigError indicates a configuration or validation error.
	ExitConfigError = 3
)

// ExitError represents a command termination with a specific exit code.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitOutdated, ExitFailure, ExitConfigError)
//   - Message: Human-readable error message
//   - Err: Underlying error that caused this exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitFailure,
//	    Message: "failed to load lockfile",
//	    Err:     err,
//	}
type ExitError struct {
	// Code is the exit code for the command.
	Code int

	// Message is a human-readable description of why the command failed.
	Message string

	// Err is the underlying error that caused this exit.
	// May be nil if no underlying error exists.
	Err error
}

// Error implements the error interface.
//
// Returns the Message field if set, otherwise returns the underlying error's
// message, or a default message with the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying error, or nil if none exists
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and underlying error.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitOutdated, ExitFailure, ExitConfigError)
//   - err: Underlying error, may be nil
//
// Returns:
//   - *ExitError: New exit error
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf creates an ExitError with the given code and formatted message.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Format arguments
//
// Returns:
//   - *ExitError: New exit error with formatted message
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode extracts the exit code from an error.
//
// If err is nil, returns ExitSuccess.
// If err is an ExitError, returns its code.
// If err is a ValidationError, returns ExitConfigError.
// Otherwise returns ExitFailure.
//
// Parameters:
//   - err: The error to extract code from
//
// Returns:
//   - int: Exit code
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}

	return ExitFailure
}

// IsExitError checks if err is an ExitError and returns it.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - *ExitError: The ExitError if err is one, nil otherwise
//   - bool: true if err is an ExitError
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// NotFoundError indicates that no lockfile exists for the target path.
//
// Fields:
//   - Path: The file or directory that was searched
//   - Searched: Candidate locations that were checked, in order
type NotFoundError struct {
	Path     string
	Searched []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no Package.resolved found in %s", e.Path)
}

// NotReadableError indicates that a lockfile exists but could not be read or decoded.
//
// Fields:
//   - Path: The lockfile path
//   - Err: The underlying read or decode error
type NotReadableError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *NotReadableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("could not read %s", e.Path)
	}
	return fmt.Sprintf("could not read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *NotReadableError) Unwrap() error {
	return e.Err
}

// LookupError indicates that listing the tags of one repository failed.
//
// A LookupError never aborts a run. The affected package is treated as having
// no available versions.
//
// Fields:
//   - Identity: Identity of the package whose repository was queried
//   - Location: Repository location passed to the transport
//   - Err: The underlying transport or process error
type LookupError struct {
	Identity string
	Location string
	Err      error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("tag lookup for %s (%s) failed: %v", e.Identity, e.Location, e.Err)
}

// Unwrap returns the underlying error.
func (e *LookupError) Unwrap() error {
	return e.Err
}

// ManifestUnavailableError indicates that direct dependencies could not be
// extracted from the project manifest. Callers fall back to checking every pin.
//
// Fields:
//   - Dir: The directory that was searched for a manifest
//   - Err: The underlying error, may be nil when no manifest exists
type ManifestUnavailableError struct {
	Dir string
	Err error
}

// Error implements the error interface.
func (e *ManifestUnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("no manifest found in %s", e.Dir)
	}
	return fmt.Sprintf("manifest in %s unavailable: %v", e.Dir, e.Err)
}

// Unwrap returns the underlying error.
func (e *ManifestUnavailableError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is or wraps a NotFoundError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsNotReadable reports whether err is or wraps a NotReadableError.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err is a NotReadableError
func IsNotReadable(err error) bool {
	var nr *NotReadableError
	return errors.As(err, &nr)
}
