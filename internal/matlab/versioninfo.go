package matlab

import (
	"encoding/xml"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// versionInfoFile is the version descriptor every MATLAB root carries.
const versionInfoFile = "VersionInfo.xml"

// versionDescriptor captures the one element discovery cares about. The
// root element name varies between products, so it is left unmatched.
type versionDescriptor struct {
	Release string `xml:"release"`
}

// ReadRelease reads the release label from <root>/VersionInfo.xml.
// A missing descriptor is not an error: found is false and discovery
// treats the candidate as a non-install. A descriptor that exists but
// cannot be read or parsed is a hard error, never a silent mismatch.
func ReadRelease(root string) (release string, found bool, err error) {
	path := filepath.Join(root, versionInfoFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "reading %s", path)
	}

	var desc versionDescriptor
	if err := xml.Unmarshal(data, &desc); err != nil {
		return "", false, errors.Wrapf(err, "parsing %s", path)
	}

	return desc.Release, true, nil
}
