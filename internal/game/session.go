package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/torchcrawl/internal/entity"
	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/telemetry"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// ErrSessionOver is returned by operations attempted after Quit.
var ErrSessionOver = errors.New("session has quit")

// Session owns the dungeon, the player and the visibility overlays for one run.
// It is not safe for concurrent use; a single loop feeds it commands.
type Session struct {
	ID   string // Unique session id, attached to every span
	Seed int64  // Effective seed, never 0

	cfg       Config
	rng       *rand.Rand
	generator world.GenerationStrategy
	grid      *world.Grid
	rooms     []world.Room
	player    *entity.Player
	field     *fov.Field
	state     State
}

// NewSession validates cfg, generates the first dungeon and lights the
// player's surroundings.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	generator, err := world.StrategyByName(cfg.Generator)
	if err != nil {
		return nil, err
	}
	strategy, err := fov.StrategyByName(cfg.FOV)
	if err != nil {
		return nil, err
	}
	field, err := fov.NewField(strategy, cfg.Radius)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		ID:        uuid.NewString(),
		Seed:      seed,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		generator: generator,
		field:     field,
		state:     StateRunning,
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init", trace.WithAttributes(s.attributes()...))
	defer span.End()

	if err := s.Regenerate(ctx); err != nil {
		span.RecordError(err)
		return nil, err
	}

	p := s.player.Position()
	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(s.rooms)),
		attribute.Int("player.start_x", p.X),
		attribute.Int("player.start_y", p.Y),
	)
	return s, nil
}

func (s *Session) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("session.id", s.ID),
		attribute.Int64("session.seed", s.Seed),
		attribute.String("session.generator", s.generator.Name()),
		attribute.String("session.fov", s.field.Strategy().Name()),
	}
}

// Regenerate replaces the dungeon with a fresh one drawn from the session's
// random stream. Both visibility overlays are cleared before the new layout
// is lit. On error the previous dungeon is kept.
func (s *Session) Regenerate(ctx context.Context) error {
	if s.state == StateQuit {
		return ErrSessionOver
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.regenerate", trace.WithAttributes(s.attributes()...))
	defer span.End()

	layout, err := world.Generate(ctx, s.generator, s.rng, s.cfg.Width, s.cfg.Height)
	if err != nil {
		span.RecordError(err)
		return err
	}
	return s.load(ctx, layout)
}

// load installs layout as the current dungeon.
func (s *Session) load(ctx context.Context, layout *world.Layout) error {
	if !layout.Grid.IsPassable(layout.Start.X, layout.Start.Y) {
		return fmt.Errorf("start %v is not a floor tile", layout.Start)
	}

	s.grid = layout.Grid
	s.rooms = layout.Rooms
	s.player = entity.NewPlayer(layout.Start.X, layout.Start.Y)
	s.field.Reset()
	s.field.Recompute(ctx, s.grid, s.player.Position())
	return nil
}

// Move steps the player one cell in a cardinal direction. A step into a wall,
// off the grid, or by any other delta is ignored and returns false; nothing
// is recomputed in that case. After Quit every move is ignored.
func (s *Session) Move(ctx context.Context, dx, dy int) bool {
	if s.state == StateQuit || abs(dx)+abs(dy) != 1 {
		return false
	}

	next := s.player.Position().Add(dx, dy)
	if !s.grid.IsPassable(next.X, next.Y) {
		return false
	}

	s.player.Move(dx, dy)
	s.field.Recompute(ctx, s.grid, next)
	return true
}

// AdjustRadius changes the torch radius by delta, clamped to [MinRadius, MaxRadius].
// It recomputes and returns true only when the radius actually changed.
func (s *Session) AdjustRadius(ctx context.Context, delta int) bool {
	if s.state == StateQuit {
		return false
	}
	radius := min(MaxRadius, max(MinRadius, s.field.Radius()+delta))
	if radius == s.field.Radius() {
		return false
	}
	if err := s.field.SetRadius(radius); err != nil {
		return false
	}
	s.field.Recompute(ctx, s.grid, s.player.Position())
	return true
}

// Apply executes one command and reports whether the session changed.
// Commands arriving after Quit are ignored.
func (s *Session) Apply(ctx context.Context, cmd Command) bool {
	if s.state == StateQuit {
		return false
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.command", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("command", cmd.String()),
	))
	defer span.End()

	var changed bool
	if dx, dy, ok := cmd.Delta(); ok {
		changed = s.Move(ctx, dx, dy)
	} else {
		switch cmd {
		case IncreaseRadius:
			changed = s.AdjustRadius(ctx, 1)
		case DecreaseRadius:
			changed = s.AdjustRadius(ctx, -1)
		case Regenerate:
			if err := s.Regenerate(ctx); err != nil {
				span.RecordError(err)
			} else {
				changed = true
			}
		case Quit:
			s.state = StateQuit
			changed = true
		}
	}

	span.SetAttributes(attribute.Bool("command.changed", changed))
	return changed
}

// Running reports whether the session still accepts commands.
func (s *Session) Running() bool { return s.state == StateRunning }

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Grid returns the current dungeon grid. Callers must not modify it.
func (s *Session) Grid() *world.Grid { return s.grid }

// Player returns the player's position.
func (s *Session) Player() world.Position { return s.player.Position() }

// Radius returns the current torch radius.
func (s *Session) Radius() int { return s.field.Radius() }

// Field returns the visibility overlays.
func (s *Session) Field() *fov.Field { return s.field }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
