package matlab

import (
	"log/slog"

	"github.com/thoreinstein/mlprobe/internal/logging"
	"github.com/thoreinstein/mlprobe/internal/platform"
)

// Locator runs one discovery pass for a resolved host profile.
type Locator struct {
	profile  platform.Profile
	log      *slog.Logger
	strategy strategy
}

// strategy is the platform-specific way of resolving a MATLAB root: the
// Windows registry query, or the default-path check plus search-path scan
// everywhere else. Exactly one is selected when the Locator is built.
type strategy interface {
	resolveRoot(l *Locator) (string, error)
}

// NewLocator builds a Locator for the given profile. The discovery strategy
// is fixed here, once, based on the platform the binary was built for.
// A nil logger discards discovery logging.
func NewLocator(p platform.Profile, log *slog.Logger) *Locator {
	if log == nil {
		log = logging.NewDiscard()
	}
	return &Locator{
		profile:  p,
		log:      log,
		strategy: newStrategy(p),
	}
}

// Locate resolves the MATLAB root and derives the discovery record from it.
// Any failure aborts the run; there is no partial result.
func (l *Locator) Locate() (Record, error) {
	root, err := l.strategy.resolveRoot(l)
	if err != nil {
		return Record{}, err
	}

	l.log.Info("located MATLAB installation", "root", root, "release", Release, "arch", l.profile.Arch)
	return NewRecord(root, l.profile.Arch), nil
}
