// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Visualizer VisualizerConfig `toml:"visualizer"`
	Log        LogConfig        `toml:"log"`
}

// VisualizerConfig maps the starting state and display settings.
type VisualizerConfig struct {
	Lang       *string  `toml:"lang"`
	Preset     *string  `toml:"preset"`
	Sweep      *string  `toml:"sweep"`
	Alpha      *float64 `toml:"alpha"`
	Beta       *float64 `toml:"beta"`
	Gamma      *float64 `toml:"gamma"`
	Knowledge  *float64 `toml:"knowledge"`
	Context    *float64 `toml:"context"`
	Tools      *float64 `toml:"tools"`
	PlotHeight *int     `toml:"plot-height"`
	Color      *bool    `toml:"color"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
	File  *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
