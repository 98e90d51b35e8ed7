package game

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "save.txt")

	g1 := newTestGame(t, 31)
	if err := g1.NewGame(ctx, "Sir Robin"); err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	p := g1.Player()
	p.Health = 73
	p.MaxHealth = 120
	p.AttackPower = 9
	p.Defense = 4
	p.Level = 3
	p.Experience = 55
	p.Gold = 42
	p.DungeonLevel = 4

	if err := g1.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	g2 := newTestGame(t, 32)
	if err := g2.Load(ctx, path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	loaded := g2.Player()
	if loaded == nil {
		t.Fatal("no player after Load")
	}
	if loaded.Name != "Sir Robin" {
		t.Errorf("name = %q, want %q", loaded.Name, "Sir Robin")
	}

	got := []int{loaded.Health, loaded.MaxHealth, loaded.AttackPower, loaded.Defense,
		loaded.Level, loaded.Experience, loaded.Gold, loaded.DungeonLevel}
	want := []int{73, 120, 9, 4, 3, 55, 42, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stat %d = %d, want %d", i, got[i], want[i])
		}
	}

	// Load starts a fresh level around the restored player.
	if g2.State() != StatePlaying {
		t.Errorf("state = %v after load, want playing", g2.State())
	}
	if g2.Dungeon() == nil {
		t.Fatal("no map after load")
	}
	if len(g2.Enemies()) != 5 {
		t.Errorf("enemy count = %d after load, want 5", len(g2.Enemies()))
	}
	if len(g2.FloorItems()) != 3 {
		t.Errorf("item count = %d after load, want 3", len(g2.FloorItems()))
	}
}

func TestSaveRequiresPlayer(t *testing.T) {
	g := newTestGame(t, 33)

	if err := g.Save(filepath.Join(t.TempDir(), "save.txt")); err != ErrSessionNotActive {
		t.Errorf("Save without session = %v, want ErrSessionNotActive", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	g := newTestGame(t, 34)

	if err := g.Load(context.Background(), filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Load of missing file succeeded")
	}
	if g.Player() != nil || g.State() != StateMainMenu {
		t.Error("failed Load mutated session state")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"missing stat lines", "Hero\n"},
		{"garbage stats", "Hero\nnot numbers at all\n1 2 3 4\n"},
		{"short stat line", "Hero\n100 100 5\n1 0 0 1\n"},
		{"garbage progression", "Hero\n100 100 5 2\nx y z w\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "save.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			g := newTestGame(t, 35)
			if err := g.Load(context.Background(), path); err == nil {
				t.Fatal("Load of malformed file succeeded")
			}
			if g.Player() != nil || g.State() != StateMainMenu {
				t.Error("failed Load mutated session state")
			}
		})
	}
}
