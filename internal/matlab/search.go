package matlab

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	mlerrors "github.com/thoreinstein/mlprobe/internal/errors"
	"github.com/thoreinstein/mlprobe/internal/platform"
)

// markerFile must exist inside bin/<arch> for a candidate to count as a
// real installation rather than a stray directory with the right name.
const markerFile = "MATLAB"

// searchStrategy resolves a MATLAB root on non-registry platforms: a fast
// accept of the stock installer location, then an ordered scan of the
// profile's search-path variable.
type searchStrategy struct {
	// defaultInstall is the version-specific stock location, empty when the
	// OS has none.
	defaultInstall string

	// getenv is swappable for tests; defaults to os.Getenv.
	getenv func(string) string
}

func newSearchStrategy(p platform.Profile) *searchStrategy {
	return &searchStrategy{
		defaultInstall: defaultInstalls[p.OS],
		getenv:         os.Getenv,
	}
}

func (s *searchStrategy) resolveRoot(l *Locator) (string, error) {
	if s.defaultInstall != "" {
		if info, err := os.Stat(s.defaultInstall); err == nil && info.IsDir() {
			l.log.Debug("default install location exists", "path", s.defaultInstall)
			return s.defaultInstall, nil
		}
		l.log.Debug("default install location absent, scanning search path", "path", s.defaultInstall)
	}

	return s.searchPath(l)
}

// pathScan carries state accumulated across candidate directories.
// The last release read from any rejected candidate decides how the
// overall failure is classified.
type pathScan struct {
	lastRelease string
}

// searchPath walks the profile's search-path variable in order and returns
// the root of the first candidate that passes both the marker-file check
// and the release check. First match wins; later candidates are never
// examined.
func (s *searchStrategy) searchPath(l *Locator) (string, error) {
	name := l.profile.SearchVar
	arch := l.profile.Arch

	raw := s.getenv(name)
	if raw == "" {
		return "", errors.Wrapf(mlerrors.ErrSearchPathNotSet,
			"MATLAB installation not found in %s; add matlabroot/bin/%s to %s", name, arch, name)
	}

	wantSuffix := filepath.Join("bin", arch)
	scan := &pathScan{}

	var root string
	for _, dir := range filepath.SplitList(raw) {
		// Candidates may carry a trailing separator.
		trimmed := strings.TrimRight(dir, string(os.PathSeparator))
		if !strings.HasSuffix(trimmed, wantSuffix) {
			continue
		}

		candidate := filepath.Dir(filepath.Dir(trimmed))
		l.log.Debug("testing candidate", "bin", trimmed, "root", candidate)

		ok, err := s.tryCandidate(trimmed, candidate, scan)
		if err != nil {
			return "", err
		}
		if ok {
			root = candidate
			break
		}
	}

	if root == "" {
		return "", classifyScanFailure(scan, l.profile)
	}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return "", errors.Wrapf(mlerrors.ErrRootNotFound, "directory not found: %s", root)
	}

	return root, nil
}

// tryCandidate checks one syntactic bin/<arch> match: the MATLAB marker
// file must exist directly inside it and the root's version descriptor
// must name the expected release. The release read is recorded on the scan
// even when it does not match.
func (s *searchStrategy) tryCandidate(binDir, root string, scan *pathScan) (bool, error) {
	info, err := os.Stat(filepath.Join(binDir, markerFile))
	if err != nil || info.IsDir() {
		return false, nil
	}

	release, found, err := ReadRelease(root)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	scan.lastRelease = release
	return release == Release, nil
}

// classifyScanFailure turns an exhausted scan into the specific diagnostic
// the user can act on.
func classifyScanFailure(scan *pathScan, p platform.Profile) error {
	if scan.lastRelease != "" {
		if ver, ok := relToVer[scan.lastRelease]; ok {
			return errors.Wrapf(mlerrors.ErrIncompatibleVersion,
				"MATLAB %s was found, but this release of the engine API is not compatible with it; install engine package version %s instead",
				scan.lastRelease, ver)
		}
		// A release was read but predates the oldest supported one.
		return errors.Wrap(mlerrors.ErrMinimumVersionNotMet,
			"this feature supports MATLAB R2019a and later")
	}

	return errors.Wrapf(mlerrors.ErrSearchPathMismatch,
		"MATLAB installation not found in %s; add matlabroot/bin/%s to %s", p.SearchVar, p.Arch, p.SearchVar)
}
