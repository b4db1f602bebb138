package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball is the moving ball. Direction components stay within [-1, 1].
type Ball struct {
	Position  core.Vec2
	Direction core.Vec2
	Speed     float64
	Radius    float64

	cfg config.BallConfig
}

// NewBall creates a motionless ball at the origin.
func NewBall(cfg config.BallConfig) Ball {
	return Ball{Radius: cfg.Radius, cfg: cfg}
}

// Box returns the ball's bounding box.
func (b Ball) Box() core.Box {
	return core.BoxAround(b.Position, b.Radius)
}

// Tick advances the ball one step. Leaving the court is not prevented here.
func (b *Ball) Tick() {
	b.Position = b.Position.Add(b.Direction.Scale(b.Speed))
}

// Reset serves the ball: a random direction with small components and the
// initial speed. Position is left alone.
func (b *Ball) Reset(rng *rand.Rand) {
	b.Direction = core.V(
		core.RandSign(rng)*core.RandHalfOpen(rng, b.cfg.MaxServeAngle),
		core.RandSign(rng)*core.RandHalfOpen(rng, b.cfg.MaxServeAngle),
	)
	b.Speed = b.cfg.InitialSpeed
}

// ApplyHit speeds the ball up and sends it back horizontally.
func (b *Ball) ApplyHit() {
	b.Speed = min(b.Speed+b.cfg.SpeedStep, b.cfg.MaxSpeed)
	b.Direction.X = -b.Direction.X
}

// Center parks the ball at p with no direction.
func (b *Ball) Center(p core.Vec2) {
	b.Position = p
	b.Direction = core.Vec2{}
}

// Moving reports whether the ball has a direction.
func (b Ball) Moving() bool {
	return !b.Direction.IsZero()
}
