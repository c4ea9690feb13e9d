// Package commands implements the CLI commands for mlprobe.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mlprobe/internal/config"
	mlerrors "github.com/thoreinstein/mlprobe/internal/errors"
	"github.com/thoreinstein/mlprobe/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// cfg holds the configuration loaded during initialization.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("mlprobe version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "mlprobe",
	Short: "Locate a MATLAB installation for the engine bindings",
	Long: `mlprobe is a pre-installation probe that locates a compatible MATLAB
installation on this machine and records its filesystem layout so the
engine bindings can load the correct native libraries at runtime.

Discovery checks the stock install location first (the Windows registry
on Windows), then scans the platform's library search path for a
directory ending in bin/<arch> that belongs to a matching MATLAB release.`,
	Example: `  # Locate MATLAB and write the arch record
  mlprobe locate

  # Write the record somewhere else
  mlprobe locate --output /tmp/_arch.txt

  # Inspect the recorded layout
  mlprobe show --format json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() != "help" && configLoadErr != nil {
			return mlerrors.NewUserError(configLoadErr, "Check config.yaml syntax")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return mlerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MLPROBE_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		handler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	slog.SetDefault(slog.New(handler))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctx)

	return nil
}

// Execute runs the root command and returns the process exit code.
// Failures are printed here, with the remediation suggestion when one is
// attached, so subcommands never write error output themselves.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return mlerrors.ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)

	var exitErr *mlerrors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "%s %s\n", color.YellowString("Hint:"), exitErr.Suggestion)
		}
		return exitErr.Code
	}

	return mlerrors.ExitUser
}
