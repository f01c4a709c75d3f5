package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchcrawl/internal/game"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
)

// Game runs a session in the terminal.
type Game struct {
	screen   *Screen
	renderer *Renderer
	session  *game.Session
	catalog  *Catalog
}

// NewGame opens the terminal screen for session.
func NewGame(session *game.Session, theme *gamedata.Theme, catalog *Catalog) (*Game, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen, session, theme, catalog), nil
}

func newGame(screen *Screen, session *game.Session, theme *gamedata.Theme, catalog *Catalog) *Game {
	return &Game{
		screen:   screen,
		renderer: NewRenderer(screen, theme),
		session:  session,
		catalog:  catalog,
	}
}

// Run executes the main game loop until the session quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	for g.session.Running() {
		g.draw()

		// Handle input (blocking)
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) draw() {
	snap := g.session.Snapshot()
	g.renderer.Render(&snap, g.catalog.HUD(&snap))
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		if cmd := CommandForKey(ev); cmd != game.CommandNone {
			g.session.Apply(ctx, cmd)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized underneath us
		g.session.Apply(ctx, game.Quit)
	}
}
