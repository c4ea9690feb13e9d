package runtimever

import (
	"errors"
	"testing"

	mlerrors "github.com/thoreinstein/mlprobe/internal/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Version
		wantErr bool
	}{
		{name: "major minor patch", raw: "go1.25.3", want: Version{Major: 1, Minor: 25}},
		{name: "major minor only", raw: "go1.24", want: Version{Major: 1, Minor: 24}},
		{name: "release candidate", raw: "go1.25rc1", want: Version{Major: 1, Minor: 25}},
		{name: "devel toolchain", raw: "devel +abcdef", wantErr: true},
		{name: "missing prefix", raw: "1.25.3", wantErr: true},
		{name: "garbage", raw: "gofast", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, mlerrors.ErrUnsupportedRuntime) {
					t.Fatalf("Parse(%q) error = %v, want ErrUnsupportedRuntime", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCheck_Supported(t *testing.T) {
	for _, s := range Supported {
		raw := "go" + s + ".0"
		v, err := Check(raw)
		if err != nil {
			t.Errorf("Check(%q) error = %v", raw, err)
			continue
		}
		if v.String() != s {
			t.Errorf("Check(%q) = %v, want %s", raw, v, s)
		}
	}
}

func TestCheck_Unsupported(t *testing.T) {
	tests := []string{"go1.20.5", "go1.23.0", "go2.0.0", "go1.99"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := Check(raw)
			if !errors.Is(err, mlerrors.ErrUnsupportedRuntime) {
				t.Errorf("Check(%q) error = %v, want ErrUnsupportedRuntime", raw, err)
			}
		})
	}
}
