package pong

// State is the game state machine's phase.
type State int

const (
	// StateIdle waits for a serve key with the ball at the centre.
	StateIdle State = iota
	// StateServing waits for the serve timer (delayed serve mode).
	StateServing
	// StatePlaying runs physics every tick.
	StatePlaying
	// StateGameOver is terminal. Ticks do nothing.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateServing:
		return "serving"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
