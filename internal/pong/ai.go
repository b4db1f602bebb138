package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// AIController drives a paddle with simulated reaction lag.
//
// Whenever the ball changes course the controller is asked to React. It then
// freezes for a random number of ticks, samples its current vertical offset
// from the ball and follows the ball at that offset until the next reaction.
// An offset wider than the paddle's reach is kept, so the AI misses.
type AIController struct {
	reactionDelay  int
	trackingOffset float64

	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// NewAIController creates an AI controller drawing delays from rng.
func NewAIController(difficulty *config.DifficultyManager, rng *rand.Rand) *AIController {
	return &AIController{
		difficulty: difficulty,
		rng:        rng,
	}
}

// ReactionDelay returns the ticks left before the next sample.
func (a *AIController) ReactionDelay() int {
	return a.reactionDelay
}

// TrackingOffset returns the sampled offset between paddle and ball.
func (a *AIController) TrackingOffset() float64 {
	return a.trackingOffset
}

// React schedules the next sample with a delay drawn from the reaction
// window for the ball's current speed.
func (a *AIController) React(p *Paddle, ball *Ball) {
	lo, hi := a.difficulty.ReactionRange(ball.Speed)
	a.reactionDelay = core.RandIntRange(a.rng, lo, hi)
	if a.reactionDelay == 0 {
		a.sample(p, ball)
	}
}

// Tick advances the controller by one tick.
func (a *AIController) Tick(p *Paddle, ball *Ball) {
	if a.reactionDelay > 0 {
		a.reactionDelay--
		if a.reactionDelay == 0 {
			a.sample(p, ball)
		}
		return
	}
	p.MoveTo(ball.Position.Y + a.trackingOffset)
}

func (a *AIController) sample(p *Paddle, ball *Ball) {
	a.trackingOffset = p.Position.Y - ball.Position.Y
}
