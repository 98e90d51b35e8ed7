// Package world provides the dungeon map and its generator.
package world

// TileType classifies a map cell's terrain.
type TileType int

const (
	TileFloor TileType = iota
	TileWall
	TileDoor
	TileStairsUp
	TileStairsDown
	TileTrap
)

// String returns the terrain name.
func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileDoor:
		return "door"
	case TileStairsUp:
		return "stairs_up"
	case TileStairsDown:
		return "stairs_down"
	case TileTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// Tile is one map cell: its terrain type plus the display symbol and
// walkability derived from that type. Symbol and Walkable are fixed at
// construction; callers never set them independently.
type Tile struct {
	Type     TileType
	Symbol   rune
	Walkable bool
}

// NewTile returns the canonical tile for a terrain type.
func NewTile(t TileType) Tile {
	switch t {
	case TileFloor:
		return Tile{Type: t, Symbol: '.', Walkable: true}
	case TileDoor:
		return Tile{Type: t, Symbol: '+', Walkable: true}
	case TileStairsUp:
		return Tile{Type: t, Symbol: '<', Walkable: true}
	case TileStairsDown:
		return Tile{Type: t, Symbol: '>', Walkable: true}
	case TileTrap:
		return Tile{Type: t, Symbol: '^', Walkable: true}
	default:
		return Tile{Type: TileWall, Symbol: '#', Walkable: false}
	}
}
