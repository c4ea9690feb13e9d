package matlab

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/mlprobe/internal/paths"
	"github.com/thoreinstein/mlprobe/pkg/fileutil"
)

// recordPerm is the permission on the emitted arch record.
const recordPerm = 0o644

// Record is the discovery result: the architecture tag and the three
// directories the engine bindings load native libraries from. It is the
// sole artifact the probe persists.
type Record struct {
	Arch         string `json:"arch" yaml:"arch" toml:"arch"`
	BinDir       string `json:"bin_dir" yaml:"bin_dir" toml:"bin_dir"`
	EngineDir    string `json:"engine_dir" yaml:"engine_dir" toml:"engine_dir"`
	ExternBinDir string `json:"extern_bin_dir" yaml:"extern_bin_dir" toml:"extern_bin_dir"`
}

// NewRecord derives the record for a confirmed root by joining fixed
// relative suffixes. No filesystem access happens here.
func NewRecord(root, arch string) Record {
	return Record{
		Arch:         arch,
		BinDir:       filepath.Join(root, "bin", arch),
		EngineDir:    filepath.Join(root, "extern", "engines", "python", "dist", "matlab", "engine", arch),
		ExternBinDir: filepath.Join(root, "extern", "bin", arch),
	}
}

// lines returns the four record fields in their contract order.
func (r Record) lines() []string {
	return []string{r.Arch, r.BinDir, r.EngineDir, r.ExternBinDir}
}

// WriteFile persists the record to path as four newline-separated lines
// with no trailing newline, unconditionally replacing any previous record.
// The downstream engine loader reads exactly these four lines in this order.
func (r Record) WriteFile(path string) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(path))
	}

	data := strings.Join(r.lines(), "\n")
	return fileutil.AtomicWriteFile(path, []byte(data), recordPerm)
}

// ReadRecordFile loads a previously emitted record. A single trailing
// newline is tolerated; anything other than four lines is rejected.
func ReadRecordFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, errors.Wrapf(err, "reading %s", path)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 4 {
		return Record{}, errors.Newf("malformed record %s: expected 4 lines, got %d", path, len(lines))
	}

	return Record{
		Arch:         lines[0],
		BinDir:       lines[1],
		EngineDir:    lines[2],
		ExternBinDir: lines[3],
	}, nil
}
