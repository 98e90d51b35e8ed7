// Package game provides the session controller and turn engine.
package game

// State represents the current session state.
type State int

const (
	// StateMainMenu is the pre-session state; no player or map exists.
	StateMainMenu State = iota
	// StatePlaying is the active session state. It loops on itself for every
	// accepted action until the player dies.
	StatePlaying
	// StateGameOver is terminal; only a new session leaves it.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
