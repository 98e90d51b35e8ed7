package entity

import (
	"github.com/google/uuid"

	"github.com/skerritt/retrodungeon/internal/gamedata"
	"github.com/skerritt/retrodungeon/internal/world"
)

// Enemy is a hostile creature. Enemies do not move; they stand on their
// spawn tile and retaliate when attacked.
type Enemy struct {
	ID     uuid.UUID
	Def    *gamedata.EnemyDef // Archetype this enemy was spawned from
	Name   string
	Symbol rune
	Pos    world.Position

	Health      int
	MaxHealth   int
	AttackPower int
	Defense     int
	ExpReward   int
	GoldReward  int
}

// NewEnemyFromDef spawns an enemy from an archetype at the given position.
// Enemies always spawn at full health, whatever the archetype.
func NewEnemyFromDef(def *gamedata.EnemyDef, pos world.Position) *Enemy {
	return &Enemy{
		ID:          uuid.New(),
		Def:         def,
		Name:        def.Name,
		Symbol:      def.GlyphRune(),
		Pos:         pos,
		Health:      def.HP,
		MaxHealth:   def.HP,
		AttackPower: def.Attack,
		Defense:     def.Defense,
		ExpReward:   def.ExpReward,
		GoldReward:  def.GoldReward,
	}
}

// IsAlive returns true if the enemy has health remaining.
func (e *Enemy) IsAlive() bool { return e.Health > 0 }

// TakeDamage reduces health and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.Health {
		actual = e.Health
	}
	e.Health -= actual
	return actual
}

// Position returns the enemy's current coordinates.
func (e *Enemy) Position() world.Position {
	return e.Pos
}
