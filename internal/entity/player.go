// Package entity provides the player, enemies and items.
package entity

import (
	"github.com/google/uuid"

	"github.com/skerritt/retrodungeon/internal/world"
)

// InventoryCapacity is the most items a player can carry.
const InventoryCapacity = 21

// Player is the single player-controlled entity. One player exists per
// session, created by NewGame or restored by Load.
type Player struct {
	ID   uuid.UUID
	Name string
	Pos  world.Position

	Health      int
	MaxHealth   int
	AttackPower int
	Defense     int

	Level        int
	Experience   int
	Gold         int
	DungeonLevel int

	Inventory []*Item
}

// NewPlayer creates a fresh level-1 player at the given position.
func NewPlayer(name string, pos world.Position) *Player {
	return &Player{
		ID:           uuid.New(),
		Name:         name,
		Pos:          pos,
		Health:       100,
		MaxHealth:    100,
		AttackPower:  5,
		Defense:      2,
		Level:        1,
		Experience:   0,
		Gold:         0,
		DungeonLevel: 1,
	}
}

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage reduces health and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

// Heal restores health, clamped at MaxHealth, and returns the actual amount
// healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.Health+actual > p.MaxHealth {
		actual = p.MaxHealth - p.Health
	}
	p.Health += actual
	return actual
}

// AddItem appends an item to the inventory. Returns false when the
// inventory is full.
func (p *Player) AddItem(item *Item) bool {
	if len(p.Inventory) >= InventoryCapacity {
		return false
	}
	p.Inventory = append(p.Inventory, item)
	return true
}

// SetPosition moves the player to an absolute position.
func (p *Player) SetPosition(pos world.Position) {
	p.Pos = pos
}

// MoveBy shifts the player by the given delta.
func (p *Player) MoveBy(dx, dy int) {
	p.Pos.X += dx
	p.Pos.Y += dy
}
