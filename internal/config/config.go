// Package config loads catver's runtime configuration from .catver.yaml,
// CATVER_* environment variables, and CLI flags, in that order of precedence
// (lowest to highest).
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for one hook invocation.
type Config struct {
	// Mode selects the commit-msg stage policy: bump, validate, or annotate.
	Mode string `mapstructure:"mode"`
	// CatalogRoot is the directory whose first-level subdirectories are
	// catalogs when no manifest is present.
	CatalogRoot string `mapstructure:"catalog_root"`
	// Manifest is the path of the optional catalogs.toml registry manifest.
	Manifest string `mapstructure:"manifest"`
	// SourceExt is the file extension that counts as catalog source.
	SourceExt string `mapstructure:"source_ext"`
	// InitFile is the per-catalog metadata filename.
	InitFile string `mapstructure:"init_file"`
	// DefaultLevel answers prompts when the user gives no usable input.
	// CATVER_DEFAULT_LEVEL overrides it.
	DefaultLevel string `mapstructure:"default_level"`
	Verbose      bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("mode", "bump")
	viper.SetDefault("catalog_root", "catalogs")
	viper.SetDefault("manifest", "catalogs.toml")
	viper.SetDefault("source_ext", ".py")
	viper.SetDefault("init_file", "__init__.py")
	viper.SetDefault("default_level", "patch")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}
