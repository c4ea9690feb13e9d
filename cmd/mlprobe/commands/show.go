package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mlerrors "github.com/thoreinstein/mlprobe/internal/errors"
	"github.com/thoreinstein/mlprobe/internal/matlab"
)

var (
	// showFormat holds the value of the --format flag.
	showFormat string

	// showInput holds the value of the --output flag (the record location,
	// shared vocabulary with locate).
	showInput string
)

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text",
		"output format: text, json, yaml, toml")
	showCmd.Flags().StringVarP(&showInput, "output", "o", "",
		"path of the arch record to read (default src/matlab/engine/_arch.txt)")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the recorded MATLAB layout",
	Long: `Print the discovery record written by a previous 'mlprobe locate' run.

The record holds the architecture tag and the three directories the
engine bindings load native libraries from.`,
	Example: `  # Human-readable view
  mlprobe show

  # Machine-readable for scripting
  mlprobe show --format json`,
	PreRunE: validateShowFlags,
	RunE:    runShow,
}

func validateShowFlags(_ *cobra.Command, _ []string) error {
	switch showFormat {
	case "text", "json", "yaml", "toml":
		return nil
	}
	return errors.New("invalid --format: must be text, json, yaml, or toml")
}

func runShow(cmd *cobra.Command, _ []string) error {
	path := showInput
	if path == "" {
		if cfg == nil {
			return mlerrors.NewSystemError(errors.New("configuration not initialized"), "")
		}
		path = cfg.Output
	}

	rec, err := matlab.ReadRecordFile(path)
	if err != nil {
		return mlerrors.NewUserError(err, "run 'mlprobe locate' first")
	}

	return renderRecord(cmd.OutOrStdout(), rec, showFormat)
}

func renderRecord(w io.Writer, rec matlab.Record, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "yaml":
		data, err := yaml.Marshal(rec)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "toml":
		data, err := toml.Marshal(rec)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		fmt.Fprintf(w, "arch:       %s\n", rec.Arch)
		fmt.Fprintf(w, "bin:        %s\n", rec.BinDir)
		fmt.Fprintf(w, "engine:     %s\n", rec.EngineDir)
		fmt.Fprintf(w, "extern bin: %s\n", rec.ExternBinDir)
		return nil
	}
}
