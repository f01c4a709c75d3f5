package world

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/torchcrawl/internal/telemetry"
)

// Layout is the result of one generation run.
type Layout struct {
	Grid  *Grid
	Start Position // Player spawn, always a floor tile
	Rooms []Room   // Rooms in generation order; empty for strategies without rooms
}

// GenerationStrategy builds a complete layout on a grid of the given size.
// The random source is owned by the caller so runs can be reproduced from a seed.
type GenerationStrategy interface {
	Name() string
	Generate(rng *rand.Rand, width, height int) (*Layout, error)
}

// Generate runs the strategy and records the run as a trace span.
func Generate(ctx context.Context, s GenerationStrategy, rng *rand.Rand, width, height int) (*Layout, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	layout, err := s.Generate(rng, width, height)

	span.SetAttributes(
		attribute.String("dungeon.strategy", s.Name()),
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("dungeon.room_count", len(layout.Rooms)),
		attribute.Int("dungeon.floor_count", layout.Grid.Count(TileFloor)),
		attribute.Int("dungeon.start_x", layout.Start.X),
		attribute.Int("dungeon.start_y", layout.Start.Y),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return layout, nil
}

var strategies = map[string]func() GenerationStrategy{
	"rooms": func() GenerationStrategy { return NewRoomsAndCorridors() },
	"noise": func() GenerationStrategy { return NewNoise() },
}

// StrategyByName returns a generator with default parameters for the given name.
func StrategyByName(name string) (GenerationStrategy, error) {
	ctor, ok := strategies[strings.ToLower(name)]
	if !ok {
		return nil, configErrorf("generator", "unknown strategy %q (want one of %s)", name, strings.Join(StrategyNames(), ", "))
	}
	return ctor(), nil
}

// StrategyNames lists the registered generator names in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
