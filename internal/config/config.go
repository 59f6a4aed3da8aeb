// Package config loads the output settings for the automaton renderer.
//
// Config file locations (priority order):
//  1. the path given on the command line
//  2. $AUTOMATA_CONFIG
//  3. ./automata.yaml
//
// With no file the defaults reproduce the stock picture: automata.png at
// 300 DPI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath names an explicit config file.
	EnvConfigPath = "AUTOMATA_CONFIG"
	// ConfigFileName is looked up in the working directory.
	ConfigFileName = "automata.yaml"
)

// Config holds output and figure settings. Drawing constants such as the
// arrow defaults and the shadow geometry are not configurable.
type Config struct {
	Output string       `yaml:"output"`
	Figure FigureConfig `yaml:"figure"`
	Font   FontConfig   `yaml:"font"`
}

// FigureConfig sets the physical size of the picture.
type FigureConfig struct {
	DPI        float64 `yaml:"dpi"`
	PadInches  float64 `yaml:"pad_inches"`
	UnitInches float64 `yaml:"unit_inches"`
}

// FontConfig selects the label typeface.
type FontConfig struct {
	Family string  `yaml:"family"` // mono or sans
	Size   float64 `yaml:"size"`   // points
}

// Default returns the stock settings.
func Default() *Config {
	return &Config{
		Output: "automata.png",
		Figure: FigureConfig{
			DPI:        300,
			PadInches:  0.1,
			UnitInches: 1.2,
		},
		Font: FontConfig{
			Family: "mono",
			Size:   16,
		},
	}
}

// FindConfigPath returns the first existing config file, or "".
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" && fileExists(path) {
		return path
	}
	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}
	return ""
}

// Load finds and loads the config file, or returns defaults if none found.
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return Default(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path. Missing fields take
// their default values.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	// Keys absent from the file keep their default values; keys present
	// are taken as written, so an explicit pad_inches: 0 is kept.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyDefaults replaces empty strings and zero sizes. Zero padding is a
// valid setting and is left alone.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.Figure.DPI == 0 {
		c.Figure.DPI = def.Figure.DPI
	}
	if c.Figure.UnitInches == 0 {
		c.Figure.UnitInches = def.Figure.UnitInches
	}
	if c.Font.Family == "" {
		c.Font.Family = def.Font.Family
	}
	if c.Font.Size == 0 {
		c.Font.Size = def.Font.Size
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Figure.DPI <= 0 {
		errs = append(errs, fmt.Errorf("figure.dpi must be positive, got %g", c.Figure.DPI))
	}
	if c.Figure.PadInches < 0 {
		errs = append(errs, fmt.Errorf("figure.pad_inches must not be negative, got %g", c.Figure.PadInches))
	}
	if c.Figure.UnitInches <= 0 {
		errs = append(errs, fmt.Errorf("figure.unit_inches must be positive, got %g", c.Figure.UnitInches))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font.size must be positive, got %g", c.Font.Size))
	}
	switch c.Font.Family {
	case "mono", "sans":
	default:
		errs = append(errs, fmt.Errorf("font.family must be mono or sans, got %q", c.Font.Family))
	}
	switch ext := strings.ToLower(filepath.Ext(c.Output)); ext {
	case ".png", ".svg":
	default:
		errs = append(errs, fmt.Errorf("output must end in .png or .svg, got %q", c.Output))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsNotFound reports whether err came from a missing config file.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
