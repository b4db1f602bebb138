package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// OutcomeKind classifies a collision.
type OutcomeKind int

const (
	OutcomeWallBounce OutcomeKind = iota
	OutcomePaddleHit
	OutcomeGoal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWallBounce:
		return "wall"
	case OutcomePaddleHit:
		return "hit"
	case OutcomeGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// Outcome is one collision detected in a tick. Player is the hitter for a
// paddle hit and the scorer for a goal.
type Outcome struct {
	Kind   OutcomeKind
	Player core.PlayerID
}

func (o Outcome) String() string {
	if o.Kind == OutcomeWallBounce {
		return o.Kind.String()
	}
	return fmt.Sprintf("%s:%s", o.Kind, o.Player)
}

// ContactOffset returns how far from its goal line a paddle stops the ball,
// or 0 when the paddle is not in position for ballY.
func ContactOffset(p *Paddle, ballY, overscan float64) float64 {
	if !p.InPosition(ballY) {
		return 0
	}
	return p.HalfDiagonal() - overscan
}

// Resolve runs the per-tick collision checks against the ball.
//
// The wall check runs once. The paddle on the side the ball is heading to
// (paddle1 when the ball has no horizontal direction) is tested against its
// own goal line only. A miss parks the ball at the centre and reports a goal
// for the other player; a hit calls ApplyHit.
func Resolve(ball *Ball, paddle1, paddle2 *Paddle, vp Viewport, overscan float64) []Outcome {
	var out []Outcome

	box := ball.Box()
	if box.Min.Y <= 0 || box.Max.Y >= vp.Height {
		ball.Direction.Y = -ball.Direction.Y
		out = append(out, Outcome{Kind: OutcomeWallBounce})
	}

	owner, target := core.Player1, paddle1
	if ball.Direction.X > 0 {
		owner, target = core.Player2, paddle2
	}

	c := ContactOffset(target, ball.Position.Y, overscan)
	var reached bool
	if owner == core.Player1 {
		reached = box.Min.X <= c
	} else {
		reached = box.Max.X >= vp.Width-c
	}
	if !reached {
		return out
	}

	if c == 0 {
		ball.Center(vp.Center)
		return append(out, Outcome{Kind: OutcomeGoal, Player: owner.Other()})
	}
	ball.ApplyHit()
	return append(out, Outcome{Kind: OutcomePaddleHit, Player: owner})
}
