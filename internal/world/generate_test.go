package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestRoomsReproducibility(t *testing.T) {
	seed := int64(12345)
	ctx := context.Background()

	l1, err := Generate(ctx, NewRoomsAndCorridors(), rand.New(rand.NewSource(seed)), DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	l2, err := Generate(ctx, NewRoomsAndCorridors(), rand.New(rand.NewSource(seed)), DefaultWidth, DefaultHeight)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(l1.Rooms) != len(l2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(l1.Rooms), len(l2.Rooms))
	}
	for i := range l1.Rooms {
		if l1.Rooms[i] != l2.Rooms[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, l1.Rooms[i], l2.Rooms[i])
		}
	}
	if l1.Grid.String() != l2.Grid.String() {
		t.Error("Grids generated from the same seed differ")
	}
	if l1.Start != l2.Start {
		t.Errorf("Start mismatch: %v != %v", l1.Start, l2.Start)
	}
}

func TestRoomsDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	l1, _ := Generate(ctx, NewRoomsAndCorridors(), rand.New(rand.NewSource(12345)), DefaultWidth, DefaultHeight)
	l2, _ := Generate(ctx, NewRoomsAndCorridors(), rand.New(rand.NewSource(54321)), DefaultWidth, DefaultHeight)

	if l1.Grid.String() == l2.Grid.String() {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestRoomsLayoutProperties(t *testing.T) {
	gen := NewRoomsAndCorridors()

	for seed := int64(1); seed <= 50; seed++ {
		layout, err := gen.Generate(rand.New(rand.NewSource(seed)), DefaultWidth, DefaultHeight)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		g := layout.Grid

		if len(layout.Rooms) != defaultRoomCount {
			t.Errorf("seed %d: %d rooms, want %d", seed, len(layout.Rooms), defaultRoomCount)
		}
		if layout.Start != layout.Rooms[0].Center() {
			t.Errorf("seed %d: start %v is not first room center %v", seed, layout.Start, layout.Rooms[0].Center())
		}
		if !g.IsPassable(layout.Start.X, layout.Start.Y) {
			t.Errorf("seed %d: start %v is not floor", seed, layout.Start)
		}

		for _, room := range layout.Rooms {
			if room.Width < 4 || room.Width > 8 || room.Height < 4 || room.Height > 6 {
				t.Errorf("seed %d: room size %dx%d out of range", seed, room.Width, room.Height)
			}
			if room.X < 1 || room.X+room.Width > DefaultWidth-1 || room.Y < 1 || room.Y+room.Height > DefaultHeight-1 {
				t.Errorf("seed %d: room %+v touches the border", seed, room)
			}
			for y := room.Y; y < room.Y+room.Height; y++ {
				for x := room.X; x < room.X+room.Width; x++ {
					if !g.IsPassable(x, y) {
						t.Fatalf("seed %d: room cell (%d,%d) is not floor", seed, x, y)
					}
				}
			}
		}

		for x := 0; x < g.Width(); x++ {
			for _, y := range []int{0, g.Height() - 1} {
				if tile, _ := g.Get(x, y); tile != TileWall {
					t.Errorf("seed %d: border (%d,%d) = %v", seed, x, y, tile)
				}
			}
		}
		if n := g.Count(TileEmpty); n != 0 {
			t.Errorf("seed %d: %d cells left unset", seed, n)
		}
	}
}

func TestCorridorShape(t *testing.T) {
	g, _ := NewGrid(10, 8)
	g.Fill(TileWall)

	from := Position{X: 2, Y: 2}
	to := Position{X: 7, Y: 5}
	carveCorridor(g, from, to)

	// Horizontal leg at from.Y
	for x := 2; x <= 7; x++ {
		if !g.IsPassable(x, 2) {
			t.Errorf("(%d,2) should be floor", x)
		}
	}
	// Vertical leg at to.X
	for y := 2; y <= 5; y++ {
		if !g.IsPassable(7, y) {
			t.Errorf("(7,%d) should be floor", y)
		}
	}
	if got := g.Count(TileFloor); got != 9 {
		t.Errorf("corridor carved %d cells, want 9", got)
	}
}

func TestRoomsRejectsContradictoryParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RoomsAndCorridors)
		w, h   int
	}{
		{"no rooms", func(r *RoomsAndCorridors) { r.RoomCount = 0 }, 40, 20},
		{"min width above max", func(r *RoomsAndCorridors) { r.MinRoomWidth = 9 }, 40, 20},
		{"min height above max", func(r *RoomsAndCorridors) { r.MinRoomHeight = 7 }, 40, 20},
		{"too narrow", func(r *RoomsAndCorridors) {}, 9, 20},
		{"too short", func(r *RoomsAndCorridors) {}, 40, 7},
		{"zero size room", func(r *RoomsAndCorridors) { r.MinRoomWidth = 0 }, 40, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewRoomsAndCorridors()
			tt.mutate(gen)
			_, err := gen.Generate(rand.New(rand.NewSource(1)), tt.w, tt.h)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error = %v, want *ConfigError", err)
			}
		})
	}
}

func TestRoomsSmallestGrid(t *testing.T) {
	// 10x8 is the smallest grid the defaults accept
	layout, err := NewRoomsAndCorridors().Generate(rand.New(rand.NewSource(7)), 10, 8)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !layout.Grid.IsPassable(layout.Start.X, layout.Start.Y) {
		t.Error("start is not floor")
	}
}

func TestNoiseBorderAndStart(t *testing.T) {
	gen := NewNoise()

	for seed := int64(1); seed <= 50; seed++ {
		layout, err := gen.Generate(rand.New(rand.NewSource(seed)), DefaultWidth, DefaultHeight)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		g := layout.Grid

		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				tile, _ := g.Get(x, y)
				if g.IsBorder(x, y) && tile != TileWall {
					t.Fatalf("seed %d: border (%d,%d) = %v", seed, x, y, tile)
				}
				if tile != TileWall && tile != TileFloor {
					t.Fatalf("seed %d: (%d,%d) = %v", seed, x, y, tile)
				}
			}
		}

		if layout.Start != (Position{X: 1, Y: 1}) {
			t.Errorf("seed %d: start = %v, want (1,1)", seed, layout.Start)
		}
		for y := 1; y <= 2; y++ {
			for x := 1; x <= 2; x++ {
				if !g.IsPassable(x, y) {
					t.Errorf("seed %d: start area (%d,%d) is not floor", seed, x, y)
				}
			}
		}
	}
}

func TestNoiseWallChanceExtremes(t *testing.T) {
	gen := NewNoise()
	gen.WallChance = 0
	layout, err := gen.Generate(rand.New(rand.NewSource(3)), 6, 5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got, want := layout.Grid.Count(TileFloor), 4*3; got != want {
		t.Errorf("WallChance 0: floor count = %d, want %d", got, want)
	}

	gen.WallChance = 100
	gen.Start = Position{X: 3, Y: 2}
	layout, err = gen.Generate(rand.New(rand.NewSource(3)), 7, 5)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := layout.Grid.Count(TileFloor); got != 9 {
		t.Errorf("WallChance 100: floor count = %d, want 9 (cleared start area)", got)
	}
}

func TestNoiseRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Noise)
		w, h   int
	}{
		{"tiny grid", func(n *Noise) {}, 2, 5},
		{"negative chance", func(n *Noise) { n.WallChance = -1 }, 10, 10},
		{"chance above 100", func(n *Noise) { n.WallChance = 101 }, 10, 10},
		{"start on border", func(n *Noise) { n.Start = Position{X: 0, Y: 3} }, 10, 10},
		{"start off grid", func(n *Noise) { n.Start = Position{X: 20, Y: 3} }, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewNoise()
			tt.mutate(gen)
			_, err := gen.Generate(rand.New(rand.NewSource(1)), tt.w, tt.h)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error = %v, want *ConfigError", err)
			}
		})
	}
}

func TestStrategyByName(t *testing.T) {
	for _, name := range []string{"rooms", "noise", "NOISE"} {
		s, err := StrategyByName(name)
		if err != nil {
			t.Errorf("StrategyByName(%q): %v", name, err)
			continue
		}
		if s.Name() == "" {
			t.Errorf("StrategyByName(%q) has empty name", name)
		}
	}

	_, err := StrategyByName("bsp")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("unknown strategy error = %v, want *ConfigError", err)
	}
}
