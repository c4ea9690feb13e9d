package matlab

import (
	"strings"

	"github.com/cockroachdb/errors"

	mlerrors "github.com/thoreinstein/mlprobe/internal/errors"
)

// registryKeyPath is the well-known key MathWorks installers write under
// HKEY_LOCAL_MACHINE, with one subkey per installed numeric version.
const registryKeyPath = `SOFTWARE\MathWorks\MATLAB`

// registryView abstracts the open MATLAB registry key so the matching logic
// is testable off-Windows. The real implementation lives behind a windows
// build tag.
type registryView interface {
	// SubkeyNames lists the version subkeys, e.g. ["9.11.0", "9.12.3"].
	SubkeyNames() ([]string, error)

	// RootValue reads the MATLABROOT string value of one version subkey.
	RootValue(subkey string) (string, error)

	Close() error
}

// registryStrategy resolves a MATLAB root through the Windows registry.
type registryStrategy struct {
	open func() (registryView, error)
}

func (r *registryStrategy) resolveRoot(l *Locator) (string, error) {
	view, err := r.open()
	if err != nil {
		return "", errors.Wrapf(mlerrors.ErrRegistryRead, "opening HKLM\\%s: %v", registryKeyPath, err)
	}
	defer view.Close()

	names, err := view.SubkeyNames()
	if err != nil {
		return "", errors.Wrapf(mlerrors.ErrRegistryRead, "enumerating HKLM\\%s: %v", registryKeyPath, err)
	}

	key, err := matchVersionKey(names, Version)
	if err != nil {
		return "", err
	}
	l.log.Debug("matched registry version key", "subkey", key)

	root, err := view.RootValue(key)
	if err != nil {
		return "", errors.Wrapf(mlerrors.ErrRegistryRead, "reading MATLABROOT of %s: %v", key, err)
	}

	return root, nil
}

// matchVersionKey picks the first subkey whose prefix matches the expected
// numeric version, tolerating patch suffixes ("9.12.3" matches "9.12").
// With no subkeys at all the machine has no MATLAB; with subkeys but no
// match the diagnostic lists what was found and names the newest found
// version as the remediation.
func matchVersionKey(names []string, want string) (string, error) {
	if len(names) == 0 {
		return "", mlerrors.ErrNoInstallFound
	}

	for _, name := range names {
		if strings.HasPrefix(name, want) {
			return name, nil
		}
	}

	newest := names[len(names)-1]
	return "", errors.Wrapf(mlerrors.ErrNoCompatibleInstall,
		"this release of the engine API is compatible with version %s; the found versions were %s; install engine package version %s instead",
		want, strings.Join(names, ", "), newest)
}
