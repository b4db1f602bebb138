package pong

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// ErrInvalidViewport is returned for non-positive or non-finite dimensions.
var ErrInvalidViewport = errors.New("pong: invalid viewport")

const (
	// NetDashCount is the number of dashes drawn down the middle.
	NetDashCount = 8
	// NetRotation is the rotation of every net dash.
	NetRotation = math.Pi / 4
	// PaddleRotation is the rotation of both paddle squares.
	PaddleRotation = math.Pi / 4
)

// Bounds is a vertical travel range.
type Bounds struct {
	MinY, MaxY float64
}

// Clamp restricts y to the range. A degenerate range resolves to MinY.
func (b Bounds) Clamp(y float64) float64 {
	return core.ClampF(y, b.MinY, b.MaxY)
}

// Contains reports whether y lies within the range.
func (b Bounds) Contains(y float64) bool {
	return y >= b.MinY && y <= b.MaxY
}

// Viewport holds every layout value derived from the canvas size.
// It is rebuilt as a whole on resize and never patched.
type Viewport struct {
	Width, Height float64
	Center        core.Vec2

	// PaddleOffset is how far each paddle centre sits outside the court.
	PaddleOffset float64
	PlayerBounds Bounds

	// NetDashes are the Y centres of the net dashes.
	NetDashes [NetDashCount]float64
}

// NewViewport computes the layout for a canvas of the given size.
func NewViewport(width, height float64, paddles config.PaddleConfig) (Viewport, error) {
	if !core.IsFinite(width) || !core.IsFinite(height) || width <= 0 || height <= 0 {
		return Viewport{}, fmt.Errorf("%w: %vx%v", ErrInvalidViewport, width, height)
	}
	if paddles.Radius <= 0 {
		return Viewport{}, fmt.Errorf("%w: paddle radius %v", config.ErrInvalid, paddles.Radius)
	}

	half := paddles.HalfDiagonal()
	vp := Viewport{
		Width:        width,
		Height:       height,
		Center:       core.V(width/2, height/2),
		PaddleOffset: paddles.RenderOverscan,
		PlayerBounds: Bounds{MinY: half, MaxY: height - half},
	}
	for i := range vp.NetDashes {
		vp.NetDashes[i] = (float64(i) + 0.5) * height / NetDashCount
	}
	return vp, nil
}

// PaddleX returns the horizontal position of a player's paddle.
func (v Viewport) PaddleX(p core.PlayerID) float64 {
	if p == core.Player2 {
		return v.Width + v.PaddleOffset
	}
	return -v.PaddleOffset
}
