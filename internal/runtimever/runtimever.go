// Package runtimever guards discovery on the version of the Go runtime the
// probe was built with. The companion engine bindings are only published for
// a fixed pair of Go releases, so an out-of-range toolchain fails the run
// before any filesystem access happens.
package runtimever

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	mlerrors "github.com/thoreinstein/mlprobe/internal/errors"
)

// Supported holds the Go major.minor versions the engine bindings ship for.
// MUST_BE_UPDATED_EACH_RELEASE (search repo for this string).
var Supported = []string{"1.24", "1.25"}

// Version is a parsed major.minor runtime version.
type Version struct {
	Major int
	Minor int
}

// String returns the version in major.minor form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Parse extracts the major.minor version from a runtime.Version() string
// such as "go1.25.3". Development toolchain strings ("devel ...") and
// anything else that does not lead with goMAJOR.MINOR are rejected.
func Parse(raw string) (Version, error) {
	s := strings.TrimPrefix(raw, "go")
	if s == raw {
		return Version{}, errors.Wrapf(mlerrors.ErrUnsupportedRuntime, "cannot parse runtime version %q", raw)
	}

	var v Version
	// A trailing ".patch" is tolerated and ignored.
	n, err := fmt.Sscanf(s, "%d.%d", &v.Major, &v.Minor)
	if err != nil || n != 2 {
		return Version{}, errors.Wrapf(mlerrors.ErrUnsupportedRuntime, "cannot parse runtime version %q", raw)
	}

	return v, nil
}

// Check parses raw and verifies membership in the supported set.
// It returns the parsed version so callers can log it.
func Check(raw string) (Version, error) {
	v, err := Parse(raw)
	if err != nil {
		return Version{}, err
	}

	if !slices.Contains(Supported, v.String()) {
		return Version{}, errors.Wrapf(mlerrors.ErrUnsupportedRuntime,
			"go%s is not supported; the supported Go versions are %s",
			v, strings.Join(Supported, ", "))
	}

	return v, nil
}
