package world

import "math/rand"

const defaultWallChance = 30

// Noise fills the interior with independently drawn walls and clears the area
// around a fixed start so the player can always move.
type Noise struct {
	WallChance int      // Percent chance [0,100] that an interior cell is a wall
	Start      Position // Spawn point; must be an interior cell
}

// NewNoise returns the strategy with its default parameters.
func NewNoise() *Noise {
	return &Noise{
		WallChance: defaultWallChance,
		Start:      Position{X: 1, Y: 1},
	}
}

// Name returns the name of this generator.
func (n *Noise) Name() string {
	return "noise"
}

func (n *Noise) validate(width, height int) error {
	switch {
	case width < 3 || height < 3:
		return configErrorf("size", "noise maps need at least 3x3, got %dx%d", width, height)
	case n.WallChance < 0 || n.WallChance > 100:
		return configErrorf("wall_chance", "must be within [0,100], got %d", n.WallChance)
	case n.Start.X < 1 || n.Start.X > width-2 || n.Start.Y < 1 || n.Start.Y > height-2:
		return configErrorf("start", "%v is not an interior cell of a %dx%d grid", n.Start, width, height)
	}
	return nil
}

// Generate creates the layout. Border cells are always walls.
func (n *Noise) Generate(rng *rand.Rand, width, height int) (*Layout, error) {
	if err := n.validate(width, height); err != nil {
		return nil, err
	}
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tile := TileFloor
			if grid.IsBorder(x, y) || rng.Intn(100) < n.WallChance {
				tile = TileWall
			}
			if err := grid.Set(x, y, tile); err != nil {
				return nil, err
			}
		}
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := n.Start.X+dx, n.Start.Y+dy
			if !grid.IsBorder(x, y) {
				grid.carve(x, y)
			}
		}
	}

	return &Layout{
		Grid:  grid,
		Start: n.Start,
	}, nil
}
