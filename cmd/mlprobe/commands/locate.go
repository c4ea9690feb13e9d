package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	mlerrors "github.com/thoreinstein/mlprobe/internal/errors"
	"github.com/thoreinstein/mlprobe/internal/matlab"
	"github.com/thoreinstein/mlprobe/internal/platform"
	"github.com/thoreinstein/mlprobe/internal/runtimever"
)

// locateOutput holds the value of the --output flag.
var locateOutput string

func init() {
	locateCmd.Flags().StringVarP(&locateOutput, "output", "o", "",
		"path of the arch record (default src/matlab/engine/_arch.txt)")
	rootCmd.AddCommand(locateCmd)
}

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Locate MATLAB and write the arch record",
	Long: `Locate a compatible MATLAB installation and record its layout.

The probe resolves the host architecture tag, verifies the Go runtime is
one the engine bindings support, finds the MATLAB root, and writes four
newline-separated values (architecture tag, bin directory, engine
directory, extern bin directory) to the arch record. The record is
overwritten on every run. Any failure aborts the run with a specific
diagnostic; there is no partial result.`,
	Example: `  # Standard pre-install probe
  mlprobe locate

  # Record to a custom location
  mlprobe locate --output /tmp/_arch.txt`,
	RunE: runLocate,
}

func runLocate(cmd *cobra.Command, _ []string) error {
	return locate(cmd.OutOrStdout(), runtime.GOOS, runtime.GOARCH, runtime.Version(), locateOutput)
}

// locate is the full discovery orchestration, parameterized for tests.
func locate(w io.Writer, goos, goarch, gover, output string) error {
	profile, err := platform.Resolve(goos, goarch)
	if err != nil {
		return mlerrors.NewUserError(err, "supported platforms are Windows, Linux, and macOS")
	}
	slog.Debug("resolved platform", "os", profile.OS, "arch", profile.Arch, "search_var", profile.SearchVar)

	ver, err := runtimever.Check(gover)
	if err != nil {
		return mlerrors.NewUserError(err, "")
	}
	slog.Debug("runtime version accepted", "version", ver.String())

	locator := matlab.NewLocator(profile, slog.Default())
	rec, err := locator.Locate()
	if err != nil {
		return classifyLocateError(err)
	}

	if output == "" {
		if cfg == nil {
			return mlerrors.NewSystemError(errors.New("configuration not initialized"), "")
		}
		output = cfg.Output
	}

	if err := rec.WriteFile(output); err != nil {
		return mlerrors.NewSystemError(err, "check permissions on the output directory")
	}

	fmt.Fprintf(w, "%s located MATLAB %s (%s)\n", color.GreenString("✓"), matlab.Release, rec.Arch)
	fmt.Fprintf(w, "  recorded layout to %s\n", output)
	return nil
}

// classifyLocateError attaches the exit class to a discovery failure.
// Registry and filesystem access problems are system errors; everything
// else means the machine simply lacks a compatible install.
func classifyLocateError(err error) error {
	if errors.Is(err, mlerrors.ErrRegistryRead) {
		return mlerrors.NewSystemError(err, "")
	}

	suggestion := ""
	switch {
	case errors.Is(err, mlerrors.ErrSearchPathNotSet), errors.Is(err, mlerrors.ErrSearchPathMismatch):
		suggestion = "add <matlabroot>/bin/<arch> to the library search path"
	case errors.Is(err, mlerrors.ErrMinimumVersionNotMet):
		suggestion = "install MATLAB R2019a or later"
	}

	return mlerrors.NewUserError(err, suggestion)
}
