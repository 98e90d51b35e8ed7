package world

// Position is a pair of grid coordinates. Validity against a particular map
// is checked by Map.IsValidPosition, not by the value itself.
type Position struct {
	X, Y int
}

// InvalidPosition is the sentinel for "no position recorded".
var InvalidPosition = Position{X: -1, Y: -1}

// Map is the dungeon grid: a height x width array of tiles plus the recorded
// stairs-down location. A session owns exactly one Map at a time and replaces
// it wholesale on descent; maps are never incrementally rebuilt.
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile

	// StairsDown is InvalidPosition until the generator places the stairs.
	StairsDown Position

	// Room is the walkable region carved by the generator.
	Room Room
}

// NewMap creates a map with every cell initialized to wall.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = NewTile(TileWall)
		}
	}

	return &Map{
		Width:      width,
		Height:     height,
		Tiles:      tiles,
		StairsDown: InvalidPosition,
	}
}

// IsValidPosition reports whether the coordinates are inside the grid.
func (m *Map) IsValidPosition(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsWalkable reports whether the cell can be stepped on. Out-of-bounds
// positions are never walkable.
func (m *Map) IsWalkable(x, y int) bool {
	if !m.IsValidPosition(x, y) {
		return false
	}
	return m.Tiles[y][x].Walkable
}

// TileAt returns the tile at the given position. Out-of-bounds positions
// read as wall.
func (m *Map) TileAt(x, y int) Tile {
	if !m.IsValidPosition(x, y) {
		return NewTile(TileWall)
	}
	return m.Tiles[y][x]
}

// SetTile overwrites the cell with the canonical tile for the terrain type.
// Out-of-bounds positions are ignored.
func (m *Map) SetTile(x, y int, t TileType) {
	if !m.IsValidPosition(x, y) {
		return
	}
	m.Tiles[y][x] = NewTile(t)
}

// Clear resets every cell to wall and forgets the stairs location.
func (m *Map) Clear() {
	for y := range m.Tiles {
		for x := range m.Tiles[y] {
			m.Tiles[y][x] = NewTile(TileWall)
		}
	}
	m.StairsDown = InvalidPosition
}
