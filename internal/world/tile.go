// Package world provides the dungeon grid and the strategies that generate it.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileEmpty marks a cell that no generator has written yet.
	TileEmpty Tile = ' '
	// TileWall represents an impassable, opaque wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// BlocksSight returns true if the tile stops a line of sight.
func (t Tile) BlocksSight() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}
