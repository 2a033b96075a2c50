// Package config holds the editor configuration, read from a TOML file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds plugboard configuration.
type Config struct {
	Grid  GridConfig  `toml:"grid"`
	Zoom  ZoomConfig  `toml:"zoom"`
	Board BoardConfig `toml:"board"`
	UI    UIConfig    `toml:"ui"`
}

// GridConfig controls the snap grid.
type GridConfig struct {
	Size    float64 `toml:"size"`
	Dynamic bool    `toml:"dynamic"` // snap while dragging, not just on drop
}

// ZoomConfig controls scaling limits and wheel sensitivity.
type ZoomConfig struct {
	Min       float64 `toml:"min"`
	Max       float64 `toml:"max"`
	Intensity float64 `toml:"intensity"`
}

// BoardConfig bounds panning. Zero extent disables the clamp.
type BoardConfig struct {
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
}

// PanClamped reports whether pan clamping is configured.
func (b BoardConfig) PanClamped() bool {
	return b.Right > b.Left || b.Bottom > b.Top
}

// UIConfig controls display options.
type UIConfig struct {
	Color bool `toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid:  GridConfig{Size: 1, Dynamic: false},
		Zoom:  ZoomConfig{Min: 0.25, Max: 4, Intensity: 0.1},
		Board: BoardConfig{},
		UI:    UIConfig{Color: true},
	}
}

// ConfigDir returns the plugboard config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "plugboard")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, falling back to defaults if it doesn't
// exist or fails to parse.
func Load() *Config {
	return LoadFrom(configPath())
}

// LoadFrom reads a config file from an explicit path, falling back to
// defaults on any error.
func LoadFrom(path string) *Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
