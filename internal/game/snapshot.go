package game

import (
	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// CellView is what a renderer may know about one cell.
type CellView struct {
	Kind       world.Tile
	Visibility fov.Visibility
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Width, Height int
	Player        world.Position
	Radius        int
	Generator     string
	FOV           string
	Cells         [][]CellView // indexed [y][x]
}

// At returns the view of (x, y), and false when it is outside the snapshot.
func (s *Snapshot) At(x, y int) (CellView, bool) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return CellView{}, false
	}
	return s.Cells[y][x], true
}

// IsPlayer reports whether (x, y) is the player's cell.
func (s *Snapshot) IsPlayer(x, y int) bool {
	return s.Player.X == x && s.Player.Y == y
}

// Snapshot copies the current frame. Unseen cells carry their kind too;
// hiding them is the renderer's job.
func (s *Session) Snapshot() Snapshot {
	w, h := s.grid.Width(), s.grid.Height()
	cells := make([][]CellView, h)
	for y := range cells {
		cells[y] = make([]CellView, w)
		for x := range cells[y] {
			kind, _ := s.grid.Get(x, y)
			cells[y][x] = CellView{
				Kind:       kind,
				Visibility: s.field.StateAt(world.Position{X: x, Y: y}),
			}
		}
	}

	return Snapshot{
		Width:     w,
		Height:    h,
		Player:    s.player.Position(),
		Radius:    s.field.Radius(),
		Generator: s.generator.Name(),
		FOV:       s.field.Strategy().Name(),
		Cells:     cells,
	}
}
