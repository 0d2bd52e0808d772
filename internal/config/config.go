// Package config loads roster's user configuration from .rosterconfig.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the user configuration file.
	FileName = ".rosterconfig.yaml"

	// Default configuration values
	DefaultColor        = cli.ColorAuto
	DefaultPrompt       = "roster> "
	DefaultMaxNameWidth = cli.DefaultMaxNameWidth
)

// Config represents user configuration from .rosterconfig.yaml.
// This file is user-managed and never written by roster.
type Config struct {
	// Color is "auto", "always" or "never".
	Color cli.ColorMode `yaml:"color"`

	// Prompt is printed before each shell command when input is a terminal.
	Prompt string `yaml:"prompt"`

	// MaxNameWidth caps the name column in the roster table. 0 disables the cap.
	MaxNameWidth int `yaml:"max_name_width"`

	// Genders are the choices offered for the gender field.
	Genders []model.Gender `yaml:"genders"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Color:        DefaultColor,
		Prompt:       DefaultPrompt,
		MaxNameWidth: DefaultMaxNameWidth,
		Genders:      append([]model.Gender(nil), model.DefaultGenders...),
	}
}

// DefaultPath returns the config path inside dir.
func DefaultPath(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the config file at path if it exists, otherwise returns
// defaults. Partial config files are merged with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case cli.ColorAuto, cli.ColorAlways, cli.ColorNever:
	case "":
		c.Color = DefaultColor
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}

	if c.MaxNameWidth < 0 {
		return fmt.Errorf("max_name_width must not be negative, got %d", c.MaxNameWidth)
	}

	if len(c.Genders) == 0 {
		c.Genders = append([]model.Gender(nil), model.DefaultGenders...)
	}
	for _, g := range c.Genders {
		if g == "" {
			return fmt.Errorf("genders must not contain an empty choice")
		}
	}

	return nil
}
