// Package errors provides error handling conventions for the mlprobe CLI.
//
// This package defines sentinel errors for every discovery failure class,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific failure classes
// using [errors.Is]:
//
//	if errors.Is(err, mlerrors.ErrSearchPathNotSet) {
//	    // tell the user which variable to set
//	}
//
// Discovery code wraps sentinels with additional context (the versions
// found, the variable scanned, the rejected root) so the terminal message
// stays specific while the class stays checkable.
//
// # Exit Codes
//
// The package defines standard exit codes for CLI applications:
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (no install, wrong version, unset path)
//   - ExitSystem (2): System-related error (I/O, registry access, permissions)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// remediation suggestion. It supports error unwrapping via [errors.Unwrap]
// and [errors.As]:
//
//	err := mlerrors.NewUserError(mlerrors.ErrUnsupportedPlatform, "")
//	var exitErr *mlerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
