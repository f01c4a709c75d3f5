package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchcrawl/internal/game"
)

// CommandForKey maps a key press to a session command.
// Unbound keys map to game.CommandNone.
func CommandForKey(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit
	case tcell.KeyUp:
		return game.MoveUp
	case tcell.KeyDown:
		return game.MoveDown
	case tcell.KeyLeft:
		return game.MoveLeft
	case tcell.KeyRight:
		return game.MoveRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.MoveUp
		case 's', 'S':
			return game.MoveDown
		case 'a', 'A':
			return game.MoveLeft
		case 'd', 'D':
			return game.MoveRight
		case '+', '=':
			return game.IncreaseRadius
		case '-', '_':
			return game.DecreaseRadius
		case 'r', 'R':
			return game.Regenerate
		case 'q', 'Q':
			return game.Quit
		}
	}
	return game.CommandNone
}
