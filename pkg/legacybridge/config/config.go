// Package config loads legacybridge settings from defaults, a YAML file,
// LEGACYBRIDGE_* environment variables and command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/catalog"
	"github.com/ukaji3/legacybridge-go/pkg/legacybridge/sparse"
)

// Default values.
const (
	DefaultFormat   = "json"
	DefaultLogLevel = "warn"

	// FileName is the config file looked up in the working directory.
	FileName = "legacybridge.yaml"
	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "LEGACYBRIDGE_"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatTable = "table"
)

// Config holds all settings.
type Config struct {
	MetaForCtrl   bool   `koanf:"meta_for_ctrl"`
	NaNEmptyCells bool   `koanf:"nan_empty_cells"`
	Sheet         string `koanf:"sheet"`
	Format        string `koanf:"format"` // json, table
	Pretty        bool   `koanf:"pretty"`
	LogLevel      string `koanf:"log_level"`

	// File is the config file that was read, empty if none.
	File string `koanf:"-"`
}

// findConfigFile returns the explicit path, or FileName if it exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	return ""
}

// Load reads the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were set on the command line override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"meta_for_ctrl":   catalog.DefaultMetaForCtrl(),
		"nan_empty_cells": false,
		"sheet":           sparse.DefaultSheet,
		"format":          DefaultFormat,
		"pretty":          false,
		"log_level":       DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// LEGACYBRIDGE_NAN_EMPTY_CELLS -> nan_empty_cells
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatTable:
	default:
		return fmt.Errorf("invalid format %q, must be one of: %s, %s", c.Format, FormatJSON, FormatTable)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Options converts the configuration into loading options.
func (c *Config) Options(logger *slog.Logger) legacybridge.Options {
	meta := c.MetaForCtrl
	nan := c.NaNEmptyCells
	return legacybridge.Options{
		MetaForCtrl:   &meta,
		NaNEmptyCells: &nan,
		Sheet:         c.Sheet,
		Logger:        logger,
	}
}
