package game

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/skerritt/retrodungeon/internal/entity"
	"github.com/skerritt/retrodungeon/internal/telemetry"
	"github.com/skerritt/retrodungeon/internal/world"
)

// HandleMovement resolves one player turn: the move itself, combat with an
// enemy on the destination tile, and descent when the destination is the
// stairs. Returns ErrSessionNotActive outside an active session.
func (g *Game) HandleMovement(ctx context.Context, dir Direction) error {
	if !g.active() {
		return ErrSessionNotActive
	}

	dx, dy := dir.Delta()
	dest := world.Position{X: g.player.Pos.X + dx, Y: g.player.Pos.Y + dy}

	if !g.dungeon.IsWalkable(dest.X, dest.Y) {
		// Blocked. The turn is accepted but the player stays put.
		return nil
	}

	g.player.SetPosition(dest)

	if enemy := g.EnemyAt(dest); enemy != nil {
		g.resolveCombat(ctx, enemy)
	}

	// Descend only if combat left the player standing.
	if g.state == StatePlaying && g.dungeon.TileAt(dest.X, dest.Y).Type == world.TileStairsDown {
		return g.descend(ctx)
	}
	return nil
}

// resolveCombat runs one attacker-first exchange between the player and an
// enemy. The player's hit ignores enemy defense; a surviving enemy
// retaliates for at least 1 damage so combat always progresses.
func (g *Game) resolveCombat(ctx context.Context, enemy *entity.Enemy) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.exchange")
	defer span.End()

	damage := g.player.AttackPower
	enemy.TakeDamage(damage)
	g.messages.Push(fmt.Sprintf("You hit %s for %d damage!", enemy.Name, damage))

	span.SetAttributes(
		attribute.String("enemy.type", enemy.Def.ID),
		attribute.Int("player.damage", damage),
		attribute.Int("enemy.hp_after", enemy.Health),
	)

	if enemy.IsAlive() {
		retaliation := enemy.AttackPower - g.player.Defense
		if retaliation < 1 {
			retaliation = 1
		}
		g.player.TakeDamage(retaliation)
		g.messages.Push(fmt.Sprintf("%s hits you for %d damage!", enemy.Name, retaliation))
		span.SetAttributes(attribute.Int("enemy.damage", retaliation))

		if !g.player.IsAlive() {
			g.state = StateGameOver
			g.messages.Push("You have been slain!")
			span.SetAttributes(attribute.Bool("player.slain", true))
			g.log.WithFields(logrus.Fields{
				"enemy": enemy.Name,
				"level": g.player.DungeonLevel,
			}).Info("player slain")
		}
	} else {
		g.player.Experience += enemy.ExpReward
		g.player.Gold += enemy.GoldReward
		g.messages.Push(fmt.Sprintf("You defeated %s! +%d XP", enemy.Name, enemy.ExpReward))
		span.SetAttributes(attribute.Bool("enemy.slain", true))
		g.log.WithFields(logrus.Fields{
			"enemy": enemy.Name,
			"exp":   enemy.ExpReward,
			"gold":  enemy.GoldReward,
		}).Debug("enemy defeated")
	}
}

// descend moves the player one dungeon level down: the old map is discarded
// wholesale, a fresh one is generated, and the enemy and item sets are
// replaced.
func (g *Game) descend(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.descend")
	defer span.End()

	g.player.DungeonLevel++

	m, err := g.generator.Generate(ctx, g.cfg.Map.Width, g.cfg.Map.Height)
	if err != nil {
		return err
	}
	g.dungeon = m
	g.player.SetPosition(world.Position{X: m.Room.X + 1, Y: m.Room.Y + 1})

	g.enemies = nil
	g.floorItems = nil
	g.spawnEnemies(g.cfg.Spawn.BaseEnemies + g.player.DungeonLevel)
	g.spawnItems(g.cfg.Spawn.FloorItems)

	g.messages.Push(fmt.Sprintf("You descend to dungeon level %d", g.player.DungeonLevel))

	span.SetAttributes(
		attribute.Int("dungeon.level", g.player.DungeonLevel),
		attribute.Int("enemy.count", len(g.enemies)),
	)
	g.log.WithField("level", g.player.DungeonLevel).Info("descended")

	return nil
}

// Update advances world state between turns. Currently that is reaping:
// every dead enemy is removed from the live set.
func (g *Game) Update() {
	if g.dungeon == nil {
		return
	}

	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if e.IsAlive() {
			alive = append(alive, e)
		}
	}
	g.enemies = alive
}

// EnemyAt returns the first alive enemy occupying the position, or nil.
func (g *Game) EnemyAt(pos world.Position) *entity.Enemy {
	for _, e := range g.enemies {
		if e.Pos == pos && e.IsAlive() {
			return e
		}
	}
	return nil
}

// spawnEnemies adds count fresh enemies on walkable interior cells, each
// with a uniformly chosen archetype.
func (g *Game) spawnEnemies(count int) {
	for i := 0; i < count; i++ {
		def := g.enemyReg.SpawnRandom(g.generator.Rng())
		pos := g.generator.RandomWalkable(g.dungeon)
		g.enemies = append(g.enemies, entity.NewEnemyFromDef(def, pos))
		g.log.WithFields(logrus.Fields{
			"type": def.ID,
			"x":    pos.X,
			"y":    pos.Y,
		}).Debug("spawned enemy")
	}
}

// spawnItems scatters count health potions on walkable interior cells.
func (g *Game) spawnItems(count int) {
	def := g.itemReg.GetByID("health_potion")
	if def == nil {
		return
	}
	for i := 0; i < count; i++ {
		pos := g.generator.RandomWalkable(g.dungeon)
		g.floorItems = append(g.floorItems, entity.NewItemFromDef(def, pos))
	}
}
