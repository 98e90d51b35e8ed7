package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/skerritt/retrodungeon/internal/config"
	"github.com/skerritt/retrodungeon/internal/entity"
	"github.com/skerritt/retrodungeon/internal/gamedata"
	"github.com/skerritt/retrodungeon/internal/telemetry"
	"github.com/skerritt/retrodungeon/internal/world"
)

// ErrSessionNotActive is returned by session operations attempted while no
// game is in progress.
var ErrSessionNotActive = errors.New("game: no active session")

// Game is the session controller. It exclusively owns all mutable state:
// the current map, the player, the live enemy set, the floor items and the
// message log. Everything runs synchronously within one call from the input
// loop; there is no background work.
type Game struct {
	cfg *config.Config
	log *logrus.Logger

	state     State
	generator *world.Generator
	dungeon   *world.Map
	player    *entity.Player

	enemies    []*entity.Enemy
	floorItems []*entity.Item
	messages   MessageLog

	enemyReg *gamedata.EnemyRegistry
	itemReg  *gamedata.ItemRegistry
}

// New creates a session controller with a clock-seeded generator.
func New(cfg *config.Config, log *logrus.Logger) (*Game, error) {
	return NewWithGenerator(cfg, log, world.NewGenerator())
}

// NewWithGenerator creates a session controller using the given generator.
// Passing a seeded generator reproduces a whole run.
func NewWithGenerator(cfg *config.Config, log *logrus.Logger, gen *world.Generator) (*Game, error) {
	enemyReg, err := gamedata.LoadEnemyRegistry()
	if err != nil {
		return nil, fmt.Errorf("load enemy archetypes: %w", err)
	}
	itemReg, err := gamedata.LoadItemRegistry()
	if err != nil {
		return nil, fmt.Errorf("load item templates: %w", err)
	}

	return &Game{
		cfg:       cfg,
		log:       log,
		state:     StateMainMenu,
		generator: gen,
		enemyReg:  enemyReg,
		itemReg:   itemReg,
	}, nil
}

// NewGame resets all state and starts a fresh session for the named player.
func (g *Game) NewGame(ctx context.Context, playerName string) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.new_game")
	defer span.End()

	m, err := g.generator.Generate(ctx, g.cfg.Map.Width, g.cfg.Map.Height)
	if err != nil {
		return err
	}
	g.dungeon = m

	g.player = entity.NewPlayer(playerName, world.Position{
		X: m.Room.X + 1,
		Y: m.Room.Y + 1,
	})

	g.enemies = nil
	g.floorItems = nil
	g.spawnEnemies(g.cfg.Spawn.BaseEnemies)
	g.spawnItems(g.cfg.Spawn.FloorItems)

	g.state = StatePlaying
	g.messages.Clear()
	g.messages.Push("Welcome to the dungeon, " + playerName + "!")

	span.SetAttributes(
		attribute.String("player.name", playerName),
		attribute.Int("enemy.count", len(g.enemies)),
		attribute.Int64("dungeon.seed", g.generator.Seed()),
	)
	g.log.WithFields(logrus.Fields{
		"player": playerName,
		"seed":   g.generator.Seed(),
	}).Info("new game started")

	return nil
}

// Shutdown releases all owned state, returning the controller to its
// pre-session condition.
func (g *Game) Shutdown() {
	g.player = nil
	g.dungeon = nil
	g.enemies = nil
	g.floorItems = nil
	g.messages.Clear()
	g.state = StateMainMenu
	g.log.Info("session shut down")
}

// active reports whether a playable session exists.
func (g *Game) active() bool {
	return g.state == StatePlaying && g.player != nil && g.dungeon != nil
}

// =============================================================================
// Render read contract: everything below is read-only state for the UI.
// =============================================================================

// State returns the current session state.
func (g *Game) State() State { return g.state }

// Player returns the player, or nil before a session starts.
func (g *Game) Player() *entity.Player { return g.player }

// Dungeon returns the current map, or nil before a session starts.
func (g *Game) Dungeon() *world.Map { return g.dungeon }

// Enemies returns the live enemy set. Dead enemies linger until the next
// Update tick.
func (g *Game) Enemies() []*entity.Enemy { return g.enemies }

// FloorItems returns the items lying on the current level.
func (g *Game) FloorItems() []*entity.Item { return g.floorItems }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages.Messages() }
