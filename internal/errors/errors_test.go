package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrRootNotFound, ExitUser),
			want: "directory not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("verifying root: %w", ErrRootNotFound), ExitUser),
			want: "verifying root: directory not found",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
		{
			name: "success code with error",
			err:  NewExitError(errors.New("unexpected"), ExitSuccess),
			want: "unexpected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrSearchPathNotSet, ExitUser),
			wantTarget: ErrSearchPathNotSet,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewExitError(fmt.Errorf("scanning LD_LIBRARY_PATH: %w", ErrSearchPathMismatch), ExitUser),
			wantTarget: ErrSearchPathMismatch,
			wantIs:     true,
		},
		{
			name:       "does not match unrelated sentinel",
			err:        NewExitError(ErrNoInstallFound, ExitUser),
			wantTarget: ErrRegistryRead,
			wantIs:     false,
		},
		{
			name:       "nil underlying error matches nothing",
			err:        NewExitError(nil, ExitSystem),
			wantTarget: ErrRootNotFound,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.wantTarget, got, tt.wantIs)
			}
		})
	}
}

func TestExitError_As(t *testing.T) {
	err := fmt.Errorf("running locate: %w", NewUserError(ErrUnsupportedPlatform, "supported platforms are Windows, Linux, and macOS"))

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("errors.As failed to find *ExitError in %v", err)
	}

	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion == "" {
		t.Error("Suggestion is empty, want non-empty")
	}
}

func TestNewSystemError(t *testing.T) {
	err := NewSystemError(ErrRegistryRead, "check registry permissions")

	if err.Code != ExitSystem {
		t.Errorf("Code = %d, want %d", err.Code, ExitSystem)
	}
	if !errors.Is(err, ErrRegistryRead) {
		t.Error("errors.Is(err, ErrRegistryRead) = false, want true")
	}
}
