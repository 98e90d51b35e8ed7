package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/skerritt/retrodungeon/internal/telemetry"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 80
	DefaultHeight = 24

	// MinSize is the smallest map edge the generator accepts. Below this the
	// central-room math degenerates to a zero-area room.
	MinSize = 8
)

// ErrMapTooSmall is returned when the requested dimensions cannot hold a room.
var ErrMapTooSmall = errors.New("world: map dimensions below minimum size")

// Generator carves dungeon levels. It owns the only random source in the
// game; all placement decisions (stairs, spawns) are threaded through it so
// a fixed seed reproduces a whole run.
type Generator struct {
	seed int64
	rng  *rand.Rand
}

// NewGenerator creates a generator seeded from the clock.
func NewGenerator() *Generator {
	return NewGeneratorWithSeed(time.Now().UnixNano())
}

// NewGeneratorWithSeed creates a generator with an explicit seed for
// reproducible generation.
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this generator was created with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Rng exposes the generator's random source for spawn placement.
func (g *Generator) Rng() *rand.Rand {
	return g.rng
}

// Generate carves a new level: a single rectangular room covering the central
// 50%x50% of the grid, clipped one cell inside the border, with one
// stairs-down cell at a uniformly random spot inside the room. Everything
// outside the room stays wall, so no walkable cell can touch the map edge.
func (g *Generator) Generate(ctx context.Context, width, height int) (*Map, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("generate %dx%d: %w", width, height, ErrMapTooSmall)
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	m := NewMap(width, height)

	room := Room{
		X:      width / 4,
		Y:      height / 4,
		Width:  width / 2,
		Height: height / 2,
	}
	// Clip so the room never reaches the outer border.
	if room.X+room.Width > width-1 {
		room.Width = width - 1 - room.X
	}
	if room.Y+room.Height > height-1 {
		room.Height = height - 1 - room.Y
	}

	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			m.SetTile(x, y, TileFloor)
		}
	}
	m.Room = room

	stairs := Position{
		X: room.X + g.rng.Intn(room.Width),
		Y: room.Y + g.rng.Intn(room.Height),
	}
	m.SetTile(stairs.X, stairs.Y, TileStairsDown)
	m.StairsDown = stairs

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.room_width", room.Width),
		attribute.Int("dungeon.room_height", room.Height),
		attribute.Int64("dungeon.generation_us", time.Since(startTime).Microseconds()),
	)

	return m, nil
}

// RandomWalkable returns a uniformly sampled interior position that is
// walkable, resampling up to 100 times before falling back to the room
// center. The outer border is never sampled.
func (g *Generator) RandomWalkable(m *Map) Position {
	for i := 0; i < 100; i++ {
		p := Position{
			X: 1 + g.rng.Intn(m.Width-2),
			Y: 1 + g.rng.Intn(m.Height-2),
		}
		if m.IsWalkable(p.X, p.Y) {
			return p
		}
	}

	cx, cy := m.Room.Center()
	return Position{X: cx, Y: cy}
}
