// Package config loads game configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration settings.
type Config struct {
	Map   MapConfig   `yaml:"map"`
	Spawn SpawnConfig `yaml:"spawn"`
	Save  SaveConfig  `yaml:"save"`
	Log   LogConfig   `yaml:"log"`
}

// MapConfig holds dungeon dimensions.
type MapConfig struct {
	// Width and Height of every generated level, in cells.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig holds per-level spawn counts.
type SpawnConfig struct {
	// BaseEnemies is the enemy count on level 1. Each descent adds the
	// new dungeon level on top of this base.
	BaseEnemies int `yaml:"base_enemies"`

	// FloorItems is the number of items scattered on each level.
	FloorItems int `yaml:"floor_items"`
}

// SaveConfig holds save-file settings.
type SaveConfig struct {
	// Path of the save file written by the in-game save command.
	Path string `yaml:"path"`
}

// LogConfig holds logging settings. The terminal is owned by the renderer,
// so all logs go to a file.
type LogConfig struct {
	// File is the log file path.
	File string `yaml:"file"`

	// Level is the minimum level to record ("debug", "info", "warn", "error").
	Level string `yaml:"level"`

	// MaxSizeMB is the size at which the log file is rotated.
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `yaml:"max_backups"`
}

// Default returns a Config with playable defaults.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Width:  80,
			Height: 24,
		},
		Spawn: SpawnConfig{
			BaseEnemies: 5,
			FloorItems:  3,
		},
		Save: SaveConfig{
			Path: "savegame.txt",
		},
		Log: LogConfig{
			File:       "retrodungeon.log",
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
	}
}

// Load reads configuration from the given path, layered over the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Map.Width < 8 || c.Map.Height < 8 {
		return fmt.Errorf("map dimensions %dx%d below minimum 8x8", c.Map.Width, c.Map.Height)
	}
	if c.Spawn.BaseEnemies < 0 || c.Spawn.FloorItems < 0 {
		return fmt.Errorf("spawn counts must not be negative")
	}
	return nil
}
