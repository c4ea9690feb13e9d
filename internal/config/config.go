// Package config provides configuration management for mlprobe using Viper.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/mlprobe/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "mlprobe"

// Config represents the top-level configuration structure.
type Config struct {
	Version int    `mapstructure:"version" yaml:"version"`
	Output  string `mapstructure:"output" yaml:"output"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("MLPROBE")
	viper.AutomaticEnv()
	// Explicit bind so env-only keys survive Unmarshal.
	_ = viper.BindEnv("output")

	// Defaults. The output default is resolved lazily in Load because it
	// depends on the working directory at run time.
	viper.SetDefault("version", 1)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Output == "" {
		out, err := paths.DefaultOutputPath()
		if err != nil {
			return nil, fmt.Errorf("resolving default output path: %w", err)
		}
		cfg.Output = out
	}

	return &cfg, nil
}
