package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Shape is a handle to something the scene can place.
// Net dashes are numbered from ShapeNet upwards, see NetDash.
type Shape int

const (
	ShapeBall Shape = iota
	ShapePaddle1
	ShapePaddle2
	ShapeNet
)

// NetDash returns the handle of the i-th net dash.
func NetDash(i int) Shape {
	return ShapeNet + Shape(i)
}

// IsNet reports whether the handle is a net dash.
func (s Shape) IsNet() bool {
	return s >= ShapeNet
}

func (s Shape) String() string {
	switch {
	case s == ShapeBall:
		return "ball"
	case s == ShapePaddle1:
		return "paddle1"
	case s == ShapePaddle2:
		return "paddle2"
	case s.IsNet():
		return fmt.Sprintf("net[%d]", int(s-ShapeNet))
	default:
		return "unknown"
	}
}

// Scene receives shape placements. Present is called once all shapes of a
// frame have been placed.
type Scene interface {
	Place(shape Shape, pos core.Vec2, rotation float64)
	Present()
}

// ScoreDisplay is told about every score change.
type ScoreDisplay interface {
	WriteGlyphs(player core.PlayerID, value float32)
}

// Banner shows the end-of-game message. won is true when a human player
// took the match.
type Banner interface {
	Show(message string, won bool)
}

type nopScene struct{}

func (nopScene) Place(Shape, core.Vec2, float64) {}
func (nopScene) Present()                         {}

type nopScores struct{}

func (nopScores) WriteGlyphs(core.PlayerID, float32) {}

type nopBanner struct{}

func (nopBanner) Show(string, bool) {}
