//go:build windows

package matlab

import (
	"github.com/thoreinstein/mlprobe/internal/platform"
)

// newStrategy selects the registry query on Windows.
func newStrategy(_ platform.Profile) strategy {
	return &registryStrategy{open: openMachineRegistry}
}
