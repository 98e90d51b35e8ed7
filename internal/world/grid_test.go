package world

import "testing"

func TestMapIsValidPosition(t *testing.T) {
	m := NewMap(10, 6)

	tests := []struct {
		x, y  int
		valid bool
	}{
		{0, 0, true},
		{9, 5, true},
		{5, 3, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 6, false},
	}

	for _, tt := range tests {
		if got := m.IsValidPosition(tt.x, tt.y); got != tt.valid {
			t.Errorf("IsValidPosition(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.valid)
		}
	}
}

func TestMapDefaultsToWall(t *testing.T) {
	m := NewMap(4, 4)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			tile := m.TileAt(x, y)
			if tile.Type != TileWall {
				t.Errorf("TileAt(%d,%d).Type = %v, want wall", x, y, tile.Type)
			}
			if tile.Walkable {
				t.Errorf("TileAt(%d,%d) walkable, fresh maps must be solid wall", x, y)
			}
		}
	}

	if m.StairsDown != InvalidPosition {
		t.Errorf("fresh map StairsDown = %v, want InvalidPosition", m.StairsDown)
	}
}

func TestMapSetTileCanonicalPairs(t *testing.T) {
	m := NewMap(8, 8)

	tests := []struct {
		tileType TileType
		symbol   rune
		walkable bool
	}{
		{TileFloor, '.', true},
		{TileWall, '#', false},
		{TileDoor, '+', true},
		{TileStairsUp, '<', true},
		{TileStairsDown, '>', true},
		{TileTrap, '^', true},
	}

	for _, tt := range tests {
		m.SetTile(3, 3, tt.tileType)
		tile := m.TileAt(3, 3)
		if tile.Type != tt.tileType {
			t.Errorf("SetTile(%v): got type %v", tt.tileType, tile.Type)
		}
		if tile.Symbol != tt.symbol {
			t.Errorf("SetTile(%v): symbol = %q, want %q", tt.tileType, tile.Symbol, tt.symbol)
		}
		if tile.Walkable != tt.walkable {
			t.Errorf("SetTile(%v): walkable = %v, want %v", tt.tileType, tile.Walkable, tt.walkable)
		}
	}
}

func TestMapSetTileOutOfBounds(t *testing.T) {
	m := NewMap(4, 4)

	// Must be a no-op, not a panic.
	m.SetTile(-1, 0, TileFloor)
	m.SetTile(0, -1, TileFloor)
	m.SetTile(4, 0, TileFloor)
	m.SetTile(0, 4, TileFloor)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if m.TileAt(x, y).Type != TileWall {
				t.Fatalf("out-of-bounds SetTile mutated cell (%d,%d)", x, y)
			}
		}
	}
}

func TestMapIsWalkable(t *testing.T) {
	m := NewMap(6, 6)
	m.SetTile(2, 2, TileFloor)

	if !m.IsWalkable(2, 2) {
		t.Error("IsWalkable(2,2) = false on floor tile")
	}
	if m.IsWalkable(1, 1) {
		t.Error("IsWalkable(1,1) = true on wall tile")
	}
	if m.IsWalkable(-1, 2) || m.IsWalkable(2, 6) {
		t.Error("IsWalkable out of bounds must be false")
	}
}

func TestMapClear(t *testing.T) {
	m := NewMap(6, 6)
	m.SetTile(2, 2, TileFloor)
	m.SetTile(3, 3, TileStairsDown)
	m.StairsDown = Position{X: 3, Y: 3}

	m.Clear()

	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if m.TileAt(x, y).Type != TileWall {
				t.Errorf("Clear left non-wall at (%d,%d)", x, y)
			}
		}
	}
	if m.StairsDown != InvalidPosition {
		t.Errorf("Clear left StairsDown = %v", m.StairsDown)
	}
}

func TestTileTypeString(t *testing.T) {
	tests := []struct {
		tileType TileType
		expected string
	}{
		{TileFloor, "floor"},
		{TileWall, "wall"},
		{TileStairsDown, "stairs_down"},
		{TileType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.tileType.String(); got != tt.expected {
			t.Errorf("TileType(%d).String() = %q, want %q", tt.tileType, got, tt.expected)
		}
	}
}

func TestRoomContainsAndCenter(t *testing.T) {
	r := Room{X: 2, Y: 3, Width: 4, Height: 2}

	cx, cy := r.Center()
	if cx != 4 || cy != 4 {
		t.Errorf("Center() = (%d,%d), want (4,4)", cx, cy)
	}

	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("Contains() should include room cells")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) {
		t.Error("Contains() should exclude cells past the far edge")
	}
}
