// Package config loads visitnote settings from defaults, an optional config
// file, VISITNOTE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/mrsinham/visitnote/internal/visitfile"
)

// Keys shared by viper, the config file and the flags bound to them.
const (
	KeyLogLevel      = "log_level"
	KeyLogFile       = "log_file"
	KeyCopyOnRender  = "copy_on_render"
	KeyDefaultOutput = "default_output"
)

// Config holds all visitnote settings.
type Config struct {
	LogLevel      string `mapstructure:"log_level"`
	LogFile       string `mapstructure:"log_file"`
	CopyOnRender  bool   `mapstructure:"copy_on_render"`
	DefaultOutput string `mapstructure:"default_output"`
}

// New returns a viper instance with defaults and environment overrides.
// Flags are bound by the caller before Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("VISITNOTE")
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyCopyOnRender, false)
	v.SetDefault(KeyDefaultOutput, "visit.yaml")
	return v
}

// Load reads the config file and returns the merged settings.
// An explicit path must exist; otherwise $HOME/.visitnote.yaml is read if
// present.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".visitnote")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s %q: %w", KeyLogLevel, c.LogLevel, err)
	}
	if c.DefaultOutput == "" {
		return fmt.Errorf("%s is required", KeyDefaultOutput)
	}
	if _, err := visitfile.FormatFromPath(c.DefaultOutput); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyDefaultOutput, err)
	}
	return nil
}

// ConfigDir returns the directory of the config file in use, or "".
func ConfigDir(v *viper.Viper) string {
	if f := v.ConfigFileUsed(); f != "" {
		return filepath.Dir(f)
	}
	return ""
}
