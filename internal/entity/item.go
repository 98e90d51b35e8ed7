package entity

import (
	"github.com/google/uuid"

	"github.com/skerritt/retrodungeon/internal/gamedata"
	"github.com/skerritt/retrodungeon/internal/world"
)

// Item is an inert record owned by either the floor-items collection or a
// player inventory, never both.
type Item struct {
	ID     uuid.UUID
	Def    *gamedata.ItemDef
	Name   string
	Type   string
	Symbol rune
	Pos    world.Position // Meaningful only while the item is on the floor

	Power    int // Primary value, e.g. heal amount
	Duration int // Secondary value
	Value    int // Gold value
}

// NewItemFromDef creates an item from a template at the given floor position.
func NewItemFromDef(def *gamedata.ItemDef, pos world.Position) *Item {
	return &Item{
		ID:       uuid.New(),
		Def:      def,
		Name:     def.Name,
		Type:     def.Type,
		Symbol:   def.GlyphRune(),
		Pos:      pos,
		Power:    def.Power,
		Duration: def.Duration,
		Value:    def.Value,
	}
}
