package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/skerritt/retrodungeon/internal/game"
	"github.com/skerritt/retrodungeon/internal/world"
)

// Renderer draws a session to the screen. It only reads state; all mutation
// happens inside the game package.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the full frame: map, items, enemies, player, the stat line
// and the message log.
func (r *Renderer) Render(g *game.Game) {
	r.screen.Clear()

	dungeon := g.Dungeon()
	if dungeon == nil {
		r.drawText(0, 0, "Press n for a new game, l to load, q to quit.", tcell.StyleDefault)
		r.screen.Show()
		return
	}

	// Map tiles
	for y := 0; y < dungeon.Height; y++ {
		for x := 0; x < dungeon.Width; x++ {
			tile := dungeon.TileAt(x, y)
			r.screen.SetContent(x, y, tile.Symbol, r.tileStyle(tile))
		}
	}

	// Floor items under entities
	for _, item := range g.FloorItems() {
		r.screen.SetContent(item.Pos.X, item.Pos.Y, item.Symbol, r.defColor(item.Def.Color))
	}

	// Alive enemies
	for _, e := range g.Enemies() {
		if e.IsAlive() {
			r.screen.SetContent(e.Pos.X, e.Pos.Y, e.Symbol, r.defColor(e.Def.Color))
		}
	}

	// Player on top
	if p := g.Player(); p != nil {
		playerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(p.Pos.X, p.Pos.Y, '@', playerStyle)

		statLine := fmt.Sprintf("Health: %d/%d  Level: %d  Gold: %d  Dungeon: %d",
			p.Health, p.MaxHealth, p.Level, p.Gold, p.DungeonLevel)
		r.drawText(0, dungeon.Height+1, statLine, tcell.StyleDefault.Foreground(tcell.ColorTeal))
	}

	// Message log, oldest first
	for i, msg := range g.Messages() {
		r.drawText(0, dungeon.Height+3+i, msg, tcell.StyleDefault)
	}

	if g.State() == game.StateGameOver {
		r.drawText(0, dungeon.Height+3+game.MaxMessages+1,
			"GAME OVER - press n for a new game, q to quit",
			tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}

	r.screen.Show()
}

// tileStyle returns the appropriate style for a tile type.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	switch tile.Type {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileStairsDown, world.TileStairsUp:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	case world.TileTrap:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault
	}
}

// defColor builds a style from a data-file hex color, falling back to white.
func (r *Renderer) defColor(hex string) tcell.Style {
	color, err := ParseHexColor(hex)
	if err != nil {
		color = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(color)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
