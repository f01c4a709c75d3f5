package world

import (
	"fmt"
	"strings"
)

const (
	// Default dungeon dimensions
	DefaultWidth  = 40
	DefaultHeight = 20
)

// Grid is a fixed-size rectangle of tiles, stored in [y][x] order.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile
}

// NewGrid creates a grid of the given size with every tile unset.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, configErrorf("size", "grid dimensions must be positive, got %dx%d", width, height)
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileEmpty
		}
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}, nil
}

// ParseGrid builds a grid from rows of tile runes ('#' wall, '.' floor).
// All rows must have the same length.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, configErrorf("rows", "no rows given")
	}
	width := len([]rune(rows[0]))
	g, err := NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, configErrorf("rows", "row %d has length %d, want %d", y, len(runes), width)
		}
		for x, r := range runes {
			t := Tile(r)
			if t != TileWall && t != TileFloor && t != TileEmpty {
				return nil, configErrorf("rows", "unknown tile %q at (%d,%d)", r, x, y)
			}
			g.tiles[y][x] = t
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at the given position.
func (g *Grid) Get(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return TileEmpty, fmt.Errorf("get (%d,%d) on %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	return g.tiles[y][x], nil
}

// Set writes the tile at the given position.
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d,%d) on %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	g.tiles[y][x] = t
	return nil
}

// IsPassable returns true if the given position is in bounds and can be walked on.
func (g *Grid) IsPassable(x, y int) bool {
	t, err := g.Get(x, y)
	return err == nil && t.IsPassable()
}

// IsBorder reports whether (x, y) lies on the outermost ring of the grid.
func (g *Grid) IsBorder(x, y int) bool {
	return g.InBounds(x, y) && (x == 0 || y == 0 || x == g.width-1 || y == g.height-1)
}

// Fill sets every tile to t.
func (g *Grid) Fill(t Tile) {
	for y := range g.tiles {
		for x := range g.tiles[y] {
			g.tiles[y][x] = t
		}
	}
}

// Count returns how many tiles equal t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for y := range g.tiles {
		for _, tile := range g.tiles[y] {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := range g.tiles {
		for _, t := range g.tiles[y] {
			sb.WriteRune(t.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// carve sets (x, y) to floor. Out-of-bounds cells are ignored.
func (g *Grid) carve(x, y int) {
	_ = g.Set(x, y, TileFloor)
}
