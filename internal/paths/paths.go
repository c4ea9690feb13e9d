// Package paths centralizes the filesystem locations mlprobe reads and writes.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrWorkingDirNotFound indicates the current working directory could not be determined.
	ErrWorkingDirNotFound = errors.New("working directory not found")
)

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o755

// archFileRelPath is the fixed location of the discovery record, relative to
// the directory the probe is invoked from. The companion engine package reads
// this exact path at load time.
var archFileRelPath = filepath.Join("src", "matlab", "engine", "_arch.txt")

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0755) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DefaultOutputPath returns the default location of the discovery record:
// src/matlab/engine/_arch.txt under the current working directory.
func DefaultOutputPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(ErrWorkingDirNotFound, err.Error())
	}
	return filepath.Join(cwd, archFileRelPath), nil
}
