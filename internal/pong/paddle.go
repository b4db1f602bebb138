package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle is a square rotated 45 degrees. Its vertical reach is the half
// diagonal, not the radius.
type Paddle struct {
	Position core.Vec2
	Radius   float64
	Bounds   Bounds
}

// HalfDiagonal returns radius / sqrt(2).
func (p Paddle) HalfDiagonal() float64 {
	return p.Radius / math.Sqrt2
}

// InPosition reports whether y is within the paddle's vertical reach.
func (p Paddle) InPosition(y float64) bool {
	return math.Abs(y-p.Position.Y) <= p.HalfDiagonal()
}

// MoveTo sets the paddle's Y, clamped to its travel bounds.
func (p *Paddle) MoveTo(y float64) {
	p.Position.Y = p.Bounds.Clamp(y)
}

// KeyCode is a directional or serve key delivered by the host.
type KeyCode int

const (
	KeyUp KeyCode = iota
	KeyDown
	KeyServe
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyServe:
		return "serve"
	default:
		return "unknown"
	}
}

// KeyEvent is a key-down (Pressed) or key-up for one player.
type KeyEvent struct {
	Player  core.PlayerID
	Code    KeyCode
	Pressed bool
}

// HumanController moves a paddle from key events.
//
// In continuous mode a key-down holds a direction that is applied every
// tick until a key-up. In step mode every key-down moves the paddle by a
// fixed step at once and key-ups are ignored.
type HumanController struct {
	mode      config.MoveMode
	speed     float64
	step      float64
	direction float64
}

// NewHumanController creates a controller for the given paddle settings.
func NewHumanController(mode config.MoveMode, cfg config.PaddleConfig) *HumanController {
	return &HumanController{
		mode:  mode,
		speed: cfg.Speed,
		step:  cfg.StepSize,
	}
}

// Direction returns the held direction: -1 up, +1 down, 0 still.
func (h *HumanController) Direction() float64 {
	return h.direction
}

// Key applies a directional key event to the paddle.
func (h *HumanController) Key(p *Paddle, code KeyCode, pressed bool) {
	var dir float64
	switch code {
	case KeyUp:
		dir = -1
	case KeyDown:
		dir = 1
	default:
		return
	}

	if h.mode == config.MoveStep {
		if pressed {
			p.MoveTo(p.Position.Y + dir*h.step)
		}
		return
	}

	if pressed {
		h.direction = dir
	} else if h.direction == dir {
		// a stale release must not cancel the opposite key
		h.direction = 0
	}
}

// Tick moves the paddle by the held direction.
func (h *HumanController) Tick(p *Paddle) {
	p.MoveTo(p.Position.Y + h.direction*h.speed)
}
