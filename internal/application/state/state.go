package state

// GameState represents the current state of a match session
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateCleared // Enemy defeated
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateCleared:
		return "Cleared"
	default:
		return "Unknown"
	}
}

// Ticking returns true if the simulation advances in this state
func (s GameState) Ticking() bool {
	return s == StatePlaying
}

// TogglePause switches between Playing and Paused. Other states are kept.
func (s GameState) TogglePause() GameState {
	switch s {
	case StatePlaying:
		return StatePaused
	case StatePaused:
		return StatePlaying
	default:
		return s
	}
}
