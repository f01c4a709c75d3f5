// Package fov computes torch-lit fields of view over a world grid.
//
// A Strategy decides which cells are visible from a viewer. A Field keeps the
// cells visible this frame and the cells ever seen during the session.
package fov

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchcrawl/internal/telemetry"
	"github.com/samdwyer/torchcrawl/internal/world"
)

var (
	// ErrNegativeRadius is returned when a torch radius below zero is requested.
	ErrNegativeRadius = errors.New("fov: radius must not be negative")
	// ErrNilStrategy is returned when a field is built without a strategy.
	ErrNilStrategy = errors.New("fov: strategy is nil")
	// ErrUnknownStrategy is returned by StrategyByName for unregistered names.
	ErrUnknownStrategy = errors.New("fov: unknown strategy")
)

// Set is a set of grid positions.
type Set = mapset.Set[world.Position]

// NewSet returns an empty position set.
func NewSet() Set {
	return mapset.New[world.Position]()
}

// Strategy computes the cells visible from a viewer within a radius.
// Implementations must be deterministic and must not include out-of-bounds cells.
type Strategy interface {
	Name() string
	Visible(g *world.Grid, from world.Position, radius int) Set
}

// StrategyByName returns the named strategy with default parameters.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "sampled":
		return SampledRay{}, nil
	case "raycast":
		return NewAngularRaycast(), nil
	default:
		return nil, fmt.Errorf("%w %q (want \"sampled\" or \"raycast\")", ErrUnknownStrategy, name)
	}
}

// Visibility is the render state of a single cell.
type Visibility int

const (
	// Unseen cells have never been visible.
	Unseen Visibility = iota
	// Explored cells were visible before but are not lit now.
	Explored
	// Visible cells are lit this frame.
	Visible
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case Unseen:
		return "unseen"
	case Explored:
		return "explored"
	case Visible:
		return "visible"
	default:
		return "unknown"
	}
}

// Field holds the visibility overlays of one session.
type Field struct {
	strategy Strategy
	radius   int
	visible  Set
	explored Set
	frame    int
}

// NewField creates a field with empty overlays.
func NewField(strategy Strategy, radius int) (*Field, error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if radius < 0 {
		return nil, ErrNegativeRadius
	}
	return &Field{
		strategy: strategy,
		radius:   radius,
		visible:  NewSet(),
		explored: NewSet(),
	}, nil
}

// Strategy returns the strategy used by Recompute.
func (f *Field) Strategy() Strategy { return f.strategy }

// Radius returns the current torch radius.
func (f *Field) Radius() int { return f.radius }

// SetRadius changes the torch radius. It does not recompute.
func (f *Field) SetRadius(radius int) error {
	if radius < 0 {
		return ErrNegativeRadius
	}
	f.radius = radius
	return nil
}

// Frame counts completed recomputes since the field was created or reset.
func (f *Field) Frame() int { return f.frame }

// Recompute replaces the visible set with the cells seen from viewer and adds
// them to the explored set. The viewer's own cell is always visible.
// The returned set is a copy; changing it does not touch the field.
func (f *Field) Recompute(ctx context.Context, g *world.Grid, viewer world.Position) Set {
	tracer := telemetry.Tracer("fov")
	_, span := tracer.Start(ctx, "fov.recompute")
	defer span.End()

	visible := f.strategy.Visible(g, viewer, f.radius)
	if g.InBounds(viewer.X, viewer.Y) {
		visible.Put(viewer)
	}
	visible.Each(func(p world.Position) {
		f.explored.Put(p)
	})
	f.visible = visible
	f.frame++

	span.SetAttributes(
		attribute.String("fov.strategy", f.strategy.Name()),
		attribute.Int("fov.radius", f.radius),
		attribute.Int("fov.visible_count", visible.Size()),
		attribute.Int("fov.explored_count", f.explored.Size()),
	)
	return copySet(visible)
}

func copySet(s Set) Set {
	c := NewSet()
	s.Each(func(p world.Position) {
		c.Put(p)
	})
	return c
}

// Reset forgets both overlays. Call it whenever the grid is replaced.
func (f *Field) Reset() {
	f.visible = NewSet()
	f.explored = NewSet()
	f.frame = 0
}

// IsVisible reports whether p is lit this frame.
func (f *Field) IsVisible(p world.Position) bool {
	return f.visible.Has(p)
}

// IsExplored reports whether p has ever been visible.
func (f *Field) IsExplored(p world.Position) bool {
	return f.explored.Has(p)
}

// StateAt returns the render state of p.
func (f *Field) StateAt(p world.Position) Visibility {
	switch {
	case f.visible.Has(p):
		return Visible
	case f.explored.Has(p):
		return Explored
	default:
		return Unseen
	}
}

// VisibleCount returns the size of the visible set.
func (f *Field) VisibleCount() int { return f.visible.Size() }

// ExploredCount returns the size of the explored set.
func (f *Field) ExploredCount() int { return f.explored.Size() }

// EachVisible calls fn for every visible position, in no particular order.
func (f *Field) EachVisible(fn func(world.Position)) {
	f.visible.Each(fn)
}

// EachExplored calls fn for every explored position, in no particular order.
func (f *Field) EachExplored(fn func(world.Position)) {
	f.explored.Each(fn)
}
