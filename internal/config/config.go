// Package config handles loading and validating the optional icongen
// configuration file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// Config is the resolved configuration for an icongen run. Paths are
// relative to the project root unless absolute.
type Config struct {
	Source     string `yaml:"source"     toml:"source"     mapstructure:"source"`
	OutputDir  string `yaml:"outputDir"  toml:"outputDir"  mapstructure:"outputDir"`
	Background string `yaml:"background" toml:"background" mapstructure:"background"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Source:     filepath.Join("public", "logo.png"),
		OutputDir:  "public",
		Background: "#0A0A0A",
	}
}

// Load reads a configuration file from configPath (YAML or TOML) and returns
// a Config with defaults applied first and file values overlaid on top.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	v := viper.New()

	// Determine format from extension.
	ext := strings.TrimPrefix(filepath.Ext(configPath), ".")
	switch ext {
	case "toml":
		v.SetConfigType("toml")
	default:
		v.SetConfigType("yaml")
	}

	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOptional behaves like Load but returns Default when configPath does
// not exist.
func LoadOptional(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(configPath)
}

// Validate checks the Config for common errors.
// It returns a descriptive error if:
//   - Source or OutputDir is empty
//   - Background is not an opaque #rrggbb color
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("config: source is required")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("config: outputDir is required")
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses Background into an opaque color.
func (c *Config) BackgroundColor() (color.NRGBA, error) {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("config: background must be #rrggbb (got %q)", c.Background)
	}
	r, g, b := col.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// Resolve returns the source and output paths joined onto root.
func (c *Config) Resolve(root string) (source, outputDir string) {
	return resolvePath(root, c.Source), resolvePath(root, c.OutputDir)
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
