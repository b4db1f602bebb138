package game

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Terminal cells are mapped to a pixel grid so the simulation keeps its
// native units. A cell is about twice as tall as it is wide.
const (
	CellW = 8
	CellH = 16
)

// Visual characters for rendering
const (
	PaddleChar  = '█'
	BallChar    = '●'
	NetChar     = '╲'
	NetCharFlat = '│'
)

type placement struct {
	pos      core.Vec2
	rotation float64
}

// TermScene collects shape placements and rasterises the last presented
// frame into a core.Screen.
type TermScene struct {
	ballRadius   float64
	paddleRadius float64

	pending map[pong.Shape]placement
	shown   map[pong.Shape]placement
	frames  int
}

// NewTermScene creates a scene sized for the given configuration.
func NewTermScene(cfg config.PongConfig) *TermScene {
	return &TermScene{
		ballRadius:   cfg.Ball.Radius,
		paddleRadius: cfg.Paddles.Radius,
		pending:      make(map[pong.Shape]placement),
		shown:        make(map[pong.Shape]placement),
	}
}

// Place implements pong.Scene.
func (s *TermScene) Place(shape pong.Shape, pos core.Vec2, rotation float64) {
	s.pending[shape] = placement{pos: pos, rotation: rotation}
}

// Present implements pong.Scene.
func (s *TermScene) Present() {
	for k, v := range s.pending {
		s.shown[k] = v
	}
	s.frames++
}

// Frames returns how many frames have been presented.
func (s *TermScene) Frames() int {
	return s.frames
}

// Position returns where a shape was in the last presented frame.
func (s *TermScene) Position(shape pong.Shape) (core.Vec2, bool) {
	p, ok := s.shown[shape]
	return p.pos, ok
}

// Rasterise draws the last presented frame with its top edge at row top.
func (s *TermScene) Rasterise(dst *core.Screen, top int) {
	for shape, p := range s.shown {
		if !shape.IsNet() {
			continue
		}
		r := NetChar
		if math.Abs(p.rotation) < 1e-9 {
			r = NetCharFlat
		}
		col, row := toCell(p.pos)
		dst.SetColored(col, row+top, r, core.ColorNet)
	}

	if p, ok := s.shown[pong.ShapePaddle1]; ok {
		s.drawDiamond(dst, top, p.pos, core.ColorPlayer1)
	}
	if p, ok := s.shown[pong.ShapePaddle2]; ok {
		s.drawDiamond(dst, top, p.pos, core.ColorPlayer2)
	}
	if p, ok := s.shown[pong.ShapeBall]; ok {
		s.drawDisc(dst, top, p.pos, core.ColorBall)
	}
}

// drawDiamond fills the cells whose centre lies inside a square rotated 45
// degrees around pos.
func (s *TermScene) drawDiamond(dst *core.Screen, top int, pos core.Vec2, c core.Color) {
	half := s.paddleRadius / math.Sqrt2
	s.fill(dst, top, pos, half, c, PaddleChar, func(dx, dy float64) bool {
		return math.Abs(dx)+math.Abs(dy) <= half
	})
}

// drawDisc fills the cells inside the ball. The centre cell is always drawn
// so a ball smaller than a cell stays visible.
func (s *TermScene) drawDisc(dst *core.Screen, top int, pos core.Vec2, c core.Color) {
	r := s.ballRadius
	s.fill(dst, top, pos, r, c, BallChar, func(dx, dy float64) bool {
		return dx*dx+dy*dy <= r*r
	})
	col, row := toCell(pos)
	dst.SetColored(col, row+top, BallChar, c)
}

func (s *TermScene) fill(dst *core.Screen, top int, pos core.Vec2, reach float64, c core.Color, ch rune, inside func(dx, dy float64) bool) {
	minCol, minRow := toCell(pos.Sub(core.V(reach, reach)))
	maxCol, maxRow := toCell(pos.Add(core.V(reach, reach)))
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			cx := float64(col)*CellW + CellW/2
			cy := float64(row)*CellH + CellH/2
			if inside(cx-pos.X, cy-pos.Y) {
				dst.SetColored(col, row+top, ch, c)
			}
		}
	}
}

// toCell converts a pixel position to the cell containing it.
func toCell(p core.Vec2) (col, row int) {
	return int(math.Floor(p.X / CellW)), int(math.Floor(p.Y / CellH))
}

// ScoreBoard keeps the latest score glyph values.
type ScoreBoard struct {
	values [2]float32
	writes int
}

// WriteGlyphs implements pong.ScoreDisplay.
func (b *ScoreBoard) WriteGlyphs(player core.PlayerID, value float32) {
	switch player {
	case core.Player1:
		b.values[0] = value
	case core.Player2:
		b.values[1] = value
	default:
		return
	}
	b.writes++
}

// Value returns the displayed value for a player.
func (b *ScoreBoard) Value(player core.PlayerID) float32 {
	if player == core.Player2 {
		return b.values[1]
	}
	return b.values[0]
}

// EndBanner records the game-over message.
type EndBanner struct {
	Message string
	Won     bool
	Shown   bool
}

// Show implements pong.Banner.
func (b *EndBanner) Show(message string, won bool) {
	b.Message = message
	b.Won = won
	b.Shown = true
}

// Tint returns the background color for the banner state.
func (b *EndBanner) Tint() core.Color {
	switch {
	case !b.Shown:
		return core.ColorDefault
	case b.Won:
		return core.ColorDarkGreen
	default:
		return core.ColorDarkRed
	}
}
