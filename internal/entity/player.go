// Package entity provides the things that occupy cells of the dungeon.
package entity

import "github.com/samdwyer/torchcrawl/internal/world"

// Player is the torch bearer exploring the dungeon.
type Player struct {
	X, Y int // Current position in the dungeon
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{X: x, Y: y}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Position returns the current coordinates.
func (p *Player) Position() world.Position {
	return world.Position{X: p.X, Y: p.Y}
}
