package fov

import (
	"math"

	"github.com/samdwyer/torchcrawl/internal/world"
)

const defaultStepDegrees = 5

// AngularRaycast casts one ray per angular step and walks each with
// Bresenham's line algorithm. Cheaper than SampledRay, but thin diagonal
// gaps between two rays can go unlit.
type AngularRaycast struct {
	StepDegrees float64
}

// NewAngularRaycast returns the strategy with a 5 degree step.
func NewAngularRaycast() *AngularRaycast {
	return &AngularRaycast{StepDegrees: defaultStepDegrees}
}

// Name returns the name of this strategy.
func (r *AngularRaycast) Name() string {
	return "raycast"
}

// Visible marks every cell each ray passes through, up to and including the
// first wall it hits.
func (r *AngularRaycast) Visible(g *world.Grid, from world.Position, radius int) Set {
	visible := NewSet()
	if !g.InBounds(from.X, from.Y) {
		return visible
	}
	visible.Put(from)
	if radius == 0 {
		return visible
	}

	step := r.StepDegrees
	if step <= 0 {
		step = defaultStepDegrees
	}

	// Integer ray count keeps the angles identical between calls
	rays := int(math.Ceil(360 / step))
	for i := 0; i < rays; i++ {
		theta := float64(i) * step * math.Pi / 180
		end := world.Position{
			X: from.X + int(math.Round(float64(radius)*math.Cos(theta))),
			Y: from.Y + int(math.Round(float64(radius)*math.Sin(theta))),
		}
		castRay(g, from, end, visible)
	}
	return visible
}

// castRay walks from a to b, marking cells until it leaves the grid or
// marks a wall.
func castRay(g *world.Grid, a, b world.Position, visible Set) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	e := dx + dy

	x, y := a.X, a.Y
	for {
		tile, err := g.Get(x, y)
		if err != nil {
			return
		}
		visible.Put(world.Position{X: x, Y: y})
		if tile.BlocksSight() || (x == b.X && y == b.Y) {
			return
		}

		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}
