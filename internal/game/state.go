// Package game provides the session state driven by player commands.
package game

// State represents the current session state.
type State int

const (
	// StateRunning is the default state, waiting for the next command.
	StateRunning State = iota
	// StateQuit is entered once the player asks to leave. It is terminal.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
