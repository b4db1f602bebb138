package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Signal is the result of a score increment.
type Signal int

const (
	SignalContinue Signal = iota
	SignalWin
	// SignalIgnored means the match was already won and nothing changed.
	SignalIgnored
)

func (s Signal) String() string {
	switch s {
	case SignalContinue:
		return "continue"
	case SignalWin:
		return "win"
	case SignalIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

// ScoreTracker counts goals until one player reaches the threshold.
// Scores freeze once a player has won.
type ScoreTracker struct {
	scores    [2]int
	threshold int
	winner    core.PlayerID
	display   ScoreDisplay
}

// NewScoreTracker creates a tracker reporting changes to display.
func NewScoreTracker(threshold int, display ScoreDisplay) *ScoreTracker {
	if display == nil {
		display = nopScores{}
	}
	return &ScoreTracker{threshold: threshold, display: display}
}

// Increment adds a point for player.
func (s *ScoreTracker) Increment(player core.PlayerID) Signal {
	if s.winner != core.PlayerNone {
		return SignalIgnored
	}
	idx, ok := playerIndex(player)
	if !ok {
		return SignalIgnored
	}

	s.scores[idx]++
	s.display.WriteGlyphs(player, float32(s.scores[idx]))

	if s.scores[idx] == s.threshold {
		s.winner = player
		return SignalWin
	}
	return SignalContinue
}

// Score returns a player's points.
func (s *ScoreTracker) Score(player core.PlayerID) int {
	idx, ok := playerIndex(player)
	if !ok {
		return 0
	}
	return s.scores[idx]
}

// Threshold returns the winning score.
func (s *ScoreTracker) Threshold() int {
	return s.threshold
}

// Winner returns the winning player, or PlayerNone while the match is open.
func (s *ScoreTracker) Winner() core.PlayerID {
	return s.winner
}

func playerIndex(p core.PlayerID) (int, bool) {
	switch p {
	case core.Player1:
		return 0, true
	case core.Player2:
		return 1, true
	default:
		return 0, false
	}
}
