package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("located install", "root", "/usr/local/MATLAB/R2022a")

	got := buf.String()
	if !strings.Contains(got, "located install") {
		t.Errorf("output missing message: %q", got)
	}
	if !strings.Contains(got, "root=/usr/local/MATLAB/R2022a") {
		t.Errorf("output missing attribute: %q", got)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("scanning", "variable", "LD_LIBRARY_PATH")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %q", err, buf.String())
	}
	if record["msg"] != "scanning" {
		t.Errorf("msg = %v, want %q", record["msg"], "scanning")
	}
	if record["variable"] != "LD_LIBRARY_PATH" {
		t.Errorf("variable = %v, want %q", record["variable"], "LD_LIBRARY_PATH")
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("should be dropped")
	logger.Warn("should appear")

	got := buf.String()
	if strings.Contains(got, "should be dropped") {
		t.Errorf("info message not filtered at warn level: %q", got)
	}
	if !strings.Contains(got, "should appear") {
		t.Errorf("warn message missing: %q", got)
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	// Must not panic and must report disabled for all practical levels.
	logger.Info("dropped")
	logger.Error("dropped")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{verbosity: -1, want: slog.LevelInfo},
		{verbosity: 0, want: slog.LevelInfo},
		{verbosity: 1, want: slog.LevelDebug},
		{verbosity: 2, want: slog.Level(-8)},
		{verbosity: 5, want: slog.Level(-8)},
	}
	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}
