package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.Theme
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Render draws the HUD lines followed by the map. Unseen cells stay blank and
// the player glyph overrides whatever is under it.
func (r *Renderer) Render(snap *game.Snapshot, hud []string) {
	r.screen.Clear()

	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range hud {
		r.screen.DrawText(0, i, line, hudStyle)
	}
	top := len(hud)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if ch, style, ok := r.cell(snap, x, y); ok {
				r.screen.SetContent(x, top+y, ch, style)
			}
		}
	}

	r.screen.Show()
}

// cell returns the glyph and style for (x, y), and false for unseen cells.
func (r *Renderer) cell(snap *game.Snapshot, x, y int) (rune, tcell.Style, bool) {
	if snap.IsPlayer(x, y) {
		style := tcell.StyleDefault.Foreground(r.theme.Player.TCellColor()).Bold(true)
		return r.theme.Player.Rune(), style, true
	}

	view, _ := snap.At(x, y)
	var glyph gamedata.Glyph
	switch view.Visibility {
	case fov.Visible:
		glyph = r.theme.Visible.For(view.Kind)
	case fov.Explored:
		glyph = r.theme.Explored.For(view.Kind)
	default:
		return ' ', tcell.StyleDefault, false
	}
	return glyph.Rune(), tcell.StyleDefault.Foreground(glyph.TCellColor()), true
}
