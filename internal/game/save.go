package game

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/skerritt/retrodungeon/internal/entity"
	"github.com/skerritt/retrodungeon/internal/world"
)

// The save format is three lines of plain text:
//
//	line 1: player name
//	line 2: health maxHealth attackPower defense
//	line 3: level experience gold dungeonLevel
//
// Items and inventory are not persisted; loading regenerates the dungeon
// and respawns enemies and floor items.

// Save writes the player record to path. Returns ErrSessionNotActive when
// no player exists.
func (g *Game) Save(path string) error {
	if g.player == nil {
		return ErrSessionNotActive
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}

	p := g.player
	_, err = fmt.Fprintf(f, "%s\n%d %d %d %d\n%d %d %d %d\n",
		p.Name,
		p.Health, p.MaxHealth, p.AttackPower, p.Defense,
		p.Level, p.Experience, p.Gold, p.DungeonLevel)
	if err != nil {
		f.Close()
		return fmt.Errorf("save game: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("save game: %w", err)
	}

	g.log.WithField("path", path).Info("game saved")
	return nil
}

// Load restores a player record from path and starts a session around it.
// The file is fully parsed before any session state is touched, so a
// malformed file leaves the controller unchanged.
func (g *Game) Load(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	readLine := func() (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("unexpected end of file")
		}
		return scanner.Text(), nil
	}

	name, err := readLine()
	if err != nil {
		return fmt.Errorf("load game %s: %w", path, err)
	}

	statLine, err := readLine()
	if err != nil {
		return fmt.Errorf("load game %s: %w", path, err)
	}
	var hp, maxHP, atk, def int
	if _, err := fmt.Sscanf(statLine, "%d %d %d %d", &hp, &maxHP, &atk, &def); err != nil {
		return fmt.Errorf("load game %s: malformed stat line: %w", path, err)
	}

	progLine, err := readLine()
	if err != nil {
		return fmt.Errorf("load game %s: %w", path, err)
	}
	var level, exp, gold, dungeonLevel int
	if _, err := fmt.Sscanf(progLine, "%d %d %d %d", &level, &exp, &gold, &dungeonLevel); err != nil {
		return fmt.Errorf("load game %s: malformed progression line: %w", path, err)
	}

	m, err := g.generator.Generate(ctx, g.cfg.Map.Width, g.cfg.Map.Height)
	if err != nil {
		return err
	}
	g.dungeon = m

	player := entity.NewPlayer(name, world.Position{X: m.Room.X + 1, Y: m.Room.Y + 1})
	player.Health = hp
	player.MaxHealth = maxHP
	player.AttackPower = atk
	player.Defense = def
	player.Level = level
	player.Experience = exp
	player.Gold = gold
	player.DungeonLevel = dungeonLevel
	g.player = player

	g.enemies = nil
	g.floorItems = nil
	g.spawnEnemies(g.cfg.Spawn.BaseEnemies)
	g.spawnItems(g.cfg.Spawn.FloorItems)

	g.state = StatePlaying
	g.log.WithFields(logrus.Fields{
		"path":   path,
		"player": name,
	}).Info("game loaded")

	return nil
}
