//go:build !windows

package matlab

import (
	"github.com/thoreinstein/mlprobe/internal/platform"
)

// newStrategy selects the default-path check plus search-path scan
// everywhere the registry does not exist.
func newStrategy(p platform.Profile) strategy {
	return newSearchStrategy(p)
}
