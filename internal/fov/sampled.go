package fov

import (
	"math"

	"github.com/samdwyer/torchcrawl/internal/world"
)

// SampledRay tests every cell within a Euclidean radius by sampling points
// along the straight segment from the viewer. It gives a round torch shape at
// O(r^3) cost.
type SampledRay struct{}

// Name returns the name of this strategy.
func (SampledRay) Name() string {
	return "sampled"
}

// Visible returns the cells within radius that have an unblocked line to the viewer.
func (SampledRay) Visible(g *world.Grid, from world.Position, radius int) Set {
	visible := NewSet()

	minX, maxX := max(0, from.X-radius), min(g.Width()-1, from.X+radius)
	minY, maxY := max(0, from.Y-radius), min(g.Height()-1, from.Y+radius)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx, dy := x-from.X, y-from.Y
			if math.Hypot(float64(dx), float64(dy)) > float64(radius) {
				continue
			}
			if hasLineOfSight(g, from, world.Position{X: x, Y: y}) {
				visible.Put(world.Position{X: x, Y: y})
			}
		}
	}
	return visible
}

// hasLineOfSight samples max(|dx|,|dy|)+1 evenly spaced points from a to b,
// rounds each to a cell, and fails if any point strictly between the ends is
// a wall. The target itself may be a wall.
func hasLineOfSight(g *world.Grid, a, b world.Position) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := max(abs(dx), abs(dy))

	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(a.X) + float64(dx)*t))
		y := int(math.Round(float64(a.Y) + float64(dy)*t))
		tile, err := g.Get(x, y)
		if err != nil || tile.BlocksSight() {
			return false
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
