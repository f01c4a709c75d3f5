package game

// Command is one discrete player action.
type Command int

const (
	CommandNone Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	IncreaseRadius
	DecreaseRadius
	Regenerate
	Quit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case MoveUp:
		return "move_up"
	case MoveDown:
		return "move_down"
	case MoveLeft:
		return "move_left"
	case MoveRight:
		return "move_right"
	case IncreaseRadius:
		return "increase_radius"
	case DecreaseRadius:
		return "decrease_radius"
	case Regenerate:
		return "regenerate"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Delta returns the movement offset of a move command, and false for any other command.
// Y grows downwards.
func (c Command) Delta() (dx, dy int, ok bool) {
	switch c {
	case MoveUp:
		return 0, -1, true
	case MoveDown:
		return 0, 1, true
	case MoveLeft:
		return -1, 0, true
	case MoveRight:
		return 1, 0, true
	default:
		return 0, 0, false
	}
}
