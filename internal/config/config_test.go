package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Map.Width != 80 || cfg.Map.Height != 24 {
		t.Errorf("default map = %dx%d, want 80x24", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Spawn.BaseEnemies != 5 || cfg.Spawn.FloorItems != 3 {
		t.Errorf("default spawns = %d/%d, want 5/3", cfg.Spawn.BaseEnemies, cfg.Spawn.FloorItems)
	}
	if cfg.Save.Path == "" || cfg.Log.File == "" {
		t.Error("default paths must not be empty")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "map:\n  width: 60\n  height: 20\nspawn:\n  base_enemies: 8\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Map.Width != 60 || cfg.Map.Height != 20 {
		t.Errorf("map = %dx%d, want 60x20", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Spawn.BaseEnemies != 8 {
		t.Errorf("base enemies = %d, want 8", cfg.Spawn.BaseEnemies)
	}
	// Untouched keys keep their defaults.
	if cfg.Spawn.FloorItems != 3 {
		t.Errorf("floor items = %d, want default 3", cfg.Spawn.FloorItems)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"tiny map", "map:\n  width: 4\n  height: 4\n"},
		{"negative spawns", "spawn:\n  base_enemies: -1\n"},
		{"bad yaml", "map: [not\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load accepted invalid config")
			}
		})
	}
}
