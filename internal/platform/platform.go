// Package platform resolves the host operating system and CPU into the
// MATLAB platform profile used by discovery: the architecture tag naming
// the native binary subdirectory and the search-path variable scanned for
// candidate installations.
package platform

import (
	"github.com/cockroachdb/errors"

	mlerrors "github.com/thoreinstein/mlprobe/internal/errors"
)

// Architecture tags for the supported (OS, CPU) pairs. The tag selects the
// bin/<arch> subdirectory inside a MATLAB root.
const (
	ArchWin64   = "win64"
	ArchGlnxa64 = "glnxa64"
	ArchMaci64  = "maci64"
	ArchMaca64  = "maca64"
)

// searchVars maps a supported OS to the environment variable scanned for
// candidate MATLAB bin directories.
var searchVars = map[string]string{
	"windows": "PATH",
	"linux":   "LD_LIBRARY_PATH",
	"darwin":  "DYLD_LIBRARY_PATH",
}

// Profile describes the host for one discovery run.
type Profile struct {
	// OS is the host operating system (GOOS form: windows, linux, darwin).
	OS string

	// SearchVar is the environment variable scanned for candidate directories.
	SearchVar string

	// Arch is the MATLAB architecture tag for this OS/CPU pair.
	Arch string
}

// Resolve maps a GOOS/GOARCH pair to a Profile. It performs no filesystem
// access. Unsupported operating systems fail with ErrUnsupportedPlatform.
func Resolve(goos, goarch string) (Profile, error) {
	searchVar, ok := searchVars[goos]
	if !ok {
		return Profile{}, errors.Wrapf(mlerrors.ErrUnsupportedPlatform, "%s is not a supported platform", goos)
	}

	p := Profile{
		OS:        goos,
		SearchVar: searchVar,
	}

	switch goos {
	case "windows":
		p.Arch = ArchWin64
	case "linux":
		p.Arch = ArchGlnxa64
	case "darwin":
		// Apple silicon gets its own tag; everything else is Intel.
		if goarch == "arm64" {
			p.Arch = ArchMaca64
		} else {
			p.Arch = ArchMaci64
		}
	}

	return p, nil
}

// UsesRegistry reports whether discovery on this profile goes through the
// Windows registry instead of the search-path scan.
func (p Profile) UsesRegistry() bool {
	return p.OS == "windows"
}
