// Package config provides configuration parsing for bh3.
//
// Configuration is read from YAML or TOML, chosen by file extension, and
// merged over defaults. Environment variables override file values; CLI
// flags override both and are applied by the caller.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// minImageCols is the narrowest a raster mascot may be rendered.
const minImageCols = 16

// Config represents the bh3 configuration.
type Config struct {
	// Avator is the default mascot name. Empty picks one at random.
	Avator string `yaml:"avator" toml:"avator"`
	// Variant is the default variant id. Zero picks one at random.
	Variant int `yaml:"variant" toml:"variant"`
	// MinLength drops shorter words from every word source.
	MinLength int `yaml:"min_length" toml:"min_length"`
	// AssetsDir replaces the built-in mascots with an on-disk tree.
	AssetsDir string `yaml:"assets_dir" toml:"assets_dir"`
	// ImageCols caps the width of mascots rendered from raster images.
	ImageCols int `yaml:"image_cols" toml:"image_cols"`
	// Palette lists the xterm-256 codes words are painted with. Empty uses
	// the built-in palette.
	Palette []int `yaml:"palette" toml:"palette"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MinLength: 1,
		ImageCols: 40,
	}
}

// Load reads configuration from the standard config paths.
// Search order:
//  1. $XDG_CONFIG_HOME/bh3/config.yaml, then config.toml
//  2. ~/.config/bh3/config.yaml, then config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load(getenv func(string) string) (*Config, error) {
	for _, p := range configSearchPaths(getenv) {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p, getenv)
		}
	}
	cfg := DefaultConfig()
	if err := applyEnvOverrides(cfg, getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string, getenv func(string) string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			if err := applyEnvOverrides(cfg, getenv); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadFromReader(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := applyEnvOverrides(cfg, getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromReader decodes configuration in the given format over defaults.
func LoadFromReader(r io.Reader, format string) (*Config, error) {
	cfg := DefaultConfig()
	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}
	return cfg, nil
}

// FormatOf returns the config format implied by a file name. Anything
// that is not .toml is read as YAML.
func FormatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Validate checks the configuration for logical consistency.
func (c *Config) Validate() error {
	if c.MinLength < 0 {
		return fmt.Errorf("min_length must be non-negative, got %d", c.MinLength)
	}
	if c.Variant < 0 {
		return fmt.Errorf("variant must be non-negative, got %d", c.Variant)
	}
	if c.ImageCols < minImageCols {
		return fmt.Errorf("image_cols must be at least %d, got %d", minImageCols, c.ImageCols)
	}
	for i, code := range c.Palette {
		if code < 0 || code > 255 {
			return fmt.Errorf("palette[%d] must be an xterm-256 code (0-255), got %d", i, code)
		}
	}
	return nil
}

// applyEnvOverrides applies BH3_* environment variables.
func applyEnvOverrides(cfg *Config, getenv func(string) string) error {
	if v := getenv("BH3_AVATOR"); v != "" {
		cfg.Avator = v
	}
	if v := getenv("BH3_ASSETS_DIR"); v != "" {
		cfg.AssetsDir = v
	}
	if v := getenv("BH3_MIN_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: BH3_MIN_LENGTH: %w", err)
		}
		cfg.MinLength = n
	}
	return nil
}

// configSearchPaths returns the ordered list of config file paths to try.
// HOME is read through getenv; without any home directory only
// $XDG_CONFIG_HOME is searched.
func configSearchPaths(getenv func(string) string) []string {
	home := getenv("HOME")
	if home == "" {
		home, _ = os.UserHomeDir()
	}

	var defaultXDG string
	if home != "" {
		defaultXDG = filepath.Join(home, ".config")
	}

	dirs := []string{}
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" && xdg != defaultXDG {
		dirs = append(dirs, filepath.Join(xdg, "bh3"))
	}
	if defaultXDG != "" {
		dirs = append(dirs, filepath.Join(defaultXDG, "bh3"))
	}

	var paths []string
	for _, d := range dirs {
		paths = append(paths, filepath.Join(d, "config.yaml"), filepath.Join(d, "config.toml"))
	}
	return paths
}
