// Package config loads optional viewer defaults from a TOML file.
// Command-line flags override anything set here.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the viewer defaults.
type Config struct {
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	PixelRatio    float64 `toml:"pixel_ratio"`
	Palette       string  `toml:"palette"` // "dark" or "light"
	ForceStrength float64 `toml:"force_strength"`
	Mode          string  `toml:"mode"`   // network, circle, hierarchy
	Filter        string  `toml:"filter"` // all, friends, followers, following
	ShowLabels    bool    `toml:"show_labels"`
	Seed          int64   `toml:"seed"`
	Port          int     `toml:"port"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Width:         1200,
		Height:        900,
		PixelRatio:    1.0,
		Palette:       "dark",
		ForceStrength: 0.3,
		Mode:          "network",
		Filter:        "all",
		ShowLabels:    true,
		Seed:          1,
		Port:          8080,
	}
}

// Load reads the file at path over the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
