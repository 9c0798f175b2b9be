// Package config loads the frame CLI configuration file.
//
// The file is TOML:
//
//	width = 80.0
//	height = 24.0
//	scale = 1.0
//	border = "rounded"
//	color = true
//	workers = 4
//
//	[colors]
//	border = "240"
//	title = "36"
//	text = "255"
//
// Missing keys keep their defaults. Command-line flags override the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/grindlemire/go-frame/internal/view"
)

// Colors are lipgloss color strings for the preview.
type Colors struct {
	Border string `toml:"border"`
	Title  string `toml:"title"`
	Text   string `toml:"text"`
}

// Config holds the CLI settings.
type Config struct {
	// Width and Height are the target size scenes are laid out for when
	// the scene does not set one.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// Scale is the number of preview cells per layout unit.
	Scale float64 `toml:"scale"`
	// Border is the border drawn around the preview root.
	Border  string `toml:"border"`
	Color   bool   `toml:"color"`
	Workers int    `toml:"workers"`
	Verbose bool   `toml:"verbose"`
	Colors  Colors `toml:"colors"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:  80,
		Height: 24,
		Scale:  1,
		Border: "rounded",
		Color:  true,
		Colors: Colors{Border: "240", Title: "36", Text: "255"},
	}
}

// DefaultPath returns the per-user configuration file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "frame", "config.toml"), nil
}

// Load reads the configuration at path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, returning the defaults when path does not exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes a TOML document on top of the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("parse config: unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("invalid size %vx%v", c.Width, c.Height)
	case c.Scale <= 0:
		return fmt.Errorf("invalid scale %v", c.Scale)
	case c.Workers < 0:
		return fmt.Errorf("invalid workers %d", c.Workers)
	}
	if _, err := view.ParseBorder(c.Border); err != nil {
		return err
	}
	return nil
}

// BorderStyle returns the parsed border.
func (c Config) BorderStyle() view.Border {
	b, _ := view.ParseBorder(c.Border)
	return b
}
