package world

import "math/rand"

// Room-and-corridor defaults
const (
	defaultRoomCount     = 8
	defaultMinRoomWidth  = 4
	defaultMaxRoomWidth  = 8
	defaultMinRoomHeight = 4
	defaultMaxRoomHeight = 6
)

// RoomsAndCorridors scatters rectangular rooms and links consecutive rooms with
// L-shaped corridors. Rooms may overlap, and nothing checks that every room is
// reachable from the first one.
type RoomsAndCorridors struct {
	RoomCount     int
	MinRoomWidth  int
	MaxRoomWidth  int
	MinRoomHeight int
	MaxRoomHeight int
}

// NewRoomsAndCorridors returns the strategy with its default parameters.
func NewRoomsAndCorridors() *RoomsAndCorridors {
	return &RoomsAndCorridors{
		RoomCount:     defaultRoomCount,
		MinRoomWidth:  defaultMinRoomWidth,
		MaxRoomWidth:  defaultMaxRoomWidth,
		MinRoomHeight: defaultMinRoomHeight,
		MaxRoomHeight: defaultMaxRoomHeight,
	}
}

// Name returns the name of this generator.
func (r *RoomsAndCorridors) Name() string {
	return "rooms"
}

func (r *RoomsAndCorridors) validate(width, height int) error {
	switch {
	case r.RoomCount < 1:
		return configErrorf("room_count", "need at least one room, got %d", r.RoomCount)
	case r.MinRoomWidth < 1 || r.MinRoomHeight < 1:
		return configErrorf("room_size", "minimum room size must be positive, got %dx%d", r.MinRoomWidth, r.MinRoomHeight)
	case r.MinRoomWidth > r.MaxRoomWidth:
		return configErrorf("room_width", "min %d exceeds max %d", r.MinRoomWidth, r.MaxRoomWidth)
	case r.MinRoomHeight > r.MaxRoomHeight:
		return configErrorf("room_height", "min %d exceeds max %d", r.MinRoomHeight, r.MaxRoomHeight)
	case r.MaxRoomWidth+2 > width:
		return configErrorf("room_width", "rooms up to %d wide do not fit a %d wide grid", r.MaxRoomWidth, width)
	case r.MaxRoomHeight+2 > height:
		return configErrorf("room_height", "rooms up to %d tall do not fit a %d tall grid", r.MaxRoomHeight, height)
	}
	return nil
}

// Generate creates the layout. Parameters are checked before any random draw.
func (r *RoomsAndCorridors) Generate(rng *rand.Rand, width, height int) (*Layout, error) {
	if err := r.validate(width, height); err != nil {
		return nil, err
	}
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	grid.Fill(TileWall)

	rooms := make([]Room, 0, r.RoomCount)
	for i := 0; i < r.RoomCount; i++ {
		roomWidth := r.MinRoomWidth + rng.Intn(r.MaxRoomWidth-r.MinRoomWidth+1)
		roomHeight := r.MinRoomHeight + rng.Intn(r.MaxRoomHeight-r.MinRoomHeight+1)

		// Top-left in [1, size-room-1] keeps the room off the border
		room := Room{
			X:      1 + rng.Intn(width-roomWidth-1),
			Y:      1 + rng.Intn(height-roomHeight-1),
			Width:  roomWidth,
			Height: roomHeight,
		}
		carveRoom(grid, room)
		rooms = append(rooms, room)
	}

	// Chain rooms in generation order, not spatial order
	for i := 0; i+1 < len(rooms); i++ {
		carveCorridor(grid, rooms[i].Center(), rooms[i+1].Center())
	}

	return &Layout{
		Grid:  grid,
		Start: rooms[0].Center(),
		Rooms: rooms,
	}, nil
}

// carveRoom sets all tiles within the room to floor.
func carveRoom(g *Grid, room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.carve(x, y)
		}
	}
}

// carveCorridor runs horizontally along from.Y, then vertically along to.X.
func carveCorridor(g *Grid, from, to Position) {
	carveHorizontalTunnel(g, from.X, to.X, from.Y)
	carveVerticalTunnel(g, from.Y, to.Y, to.X)
}

// carveHorizontalTunnel carves a horizontal tunnel.
func carveHorizontalTunnel(g *Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carve(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func carveVerticalTunnel(g *Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carve(x, y)
	}
}
