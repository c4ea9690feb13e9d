package errors

import (
	"errors"
	"fmt"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (no install, wrong version, unset path).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, registry access, permissions).
	ExitSystem = 2
)

// Sentinel errors for the discovery failure classes.
var (
	// ErrUnsupportedPlatform indicates the host OS is not in the supported set.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnsupportedRuntime indicates the Go runtime version is not in the supported set.
	ErrUnsupportedRuntime = errors.New("unsupported runtime version")

	// ErrSearchPathNotSet indicates the platform's search-path variable is empty or unset.
	ErrSearchPathNotSet = errors.New("search path not set")

	// ErrSearchPathMismatch indicates the search path was set but contained no
	// directory ending in bin/<arch> with a MATLAB marker.
	ErrSearchPathMismatch = errors.New("no MATLAB installation on search path")

	// ErrNoInstallFound indicates the registry key exists but has no version subkeys.
	ErrNoInstallFound = errors.New("no MATLAB installation found in Windows registry")

	// ErrNoCompatibleInstall indicates version subkeys exist but none matches the
	// expected version prefix.
	ErrNoCompatibleInstall = errors.New("no compatible MATLAB installation found in Windows registry")

	// ErrIncompatibleVersion indicates a MATLAB release was found that maps to a
	// known older supported engine version.
	ErrIncompatibleVersion = errors.New("incompatible MATLAB version")

	// ErrMinimumVersionNotMet indicates a MATLAB release was found that predates
	// the oldest supported release.
	ErrMinimumVersionNotMet = errors.New("no compatible version of MATLAB was found")

	// ErrRootNotFound indicates the confirmed root does not exist as a directory.
	ErrRootNotFound = errors.New("directory not found")

	// ErrRegistryRead indicates a registry key or value could not be read.
	ErrRegistryRead = errors.New("MATLAB installation not found in Windows registry")
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
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
