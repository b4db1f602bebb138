// Package game adapts the pong simulation core to the registry's Game
// interface and draws it into a terminal screen buffer.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// HUDRows is the number of rows above the court used for scores.
const HUDRows = 1

// Game runs one pong variant inside a terminal.
type Game struct {
	variant Variant
	base    config.PongConfig
	cfg     config.PongConfig
	logger  *log.Logger

	session *pong.Session
	scene   *TermScene
	scores  *ScoreBoard
	banner  *EndBanner
	runtime core.RuntimeConfig
	err     error
}

// New creates a game for a variant using the default configuration.
func New(v Variant) *Game {
	return &Game{
		variant: v,
		base:    config.DefaultPongConfig(),
		logger:  log.New(io.Discard),
	}
}

// Configure replaces the configuration the variant is layered on.
// It takes effect on the next Reset.
func (g *Game) Configure(cfg config.PongConfig) {
	g.base = cfg
}

// SetLogger sets the logger used for match events.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// ID returns the variant ID.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the variant title.
func (g *Game) Title() string {
	return g.variant.Title
}

// HotSeat reports whether both paddles are driven from the keyboard.
func (g *Game) HotSeat() bool {
	c := g.variant.Apply(g.base).Controllers
	return c.Paddle1 == config.ControllerHuman && c.Paddle2 == config.ControllerHuman
}

// Config returns the effective configuration of the current match.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// Session returns the running simulation, or nil if Reset failed.
func (g *Game) Session() *pong.Session {
	return g.session
}

// Err returns the error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Reset starts a fresh match sized for the runtime screen.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.cfg = g.variant.Apply(g.base)
	g.scene = NewTermScene(g.cfg)
	g.scores = &ScoreBoard{}
	g.banner = &EndBanner{}

	w, h := courtSize(rc.ScreenW, rc.ScreenH)
	g.session, g.err = pong.NewSession(g.cfg, pong.Options{
		Width:  w,
		Height: h,
		Seed:   rc.Seed,
		Scene:  g.scene,
		Scores: g.scores,
		Banner: g.banner,
	})
	if g.err != nil {
		g.logger.Error("cannot start match", "variant", g.variant.ID, "error", g.err)
		return
	}
	g.logger.Debug("match started", "variant", g.variant.ID, "court", fmt.Sprintf("%.0fx%.0f", w, h), "seed", rc.Seed)
}

// Resize adapts the court to a new screen size without restarting.
func (g *Game) Resize(width, height int) error {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	if g.session == nil {
		return g.err
	}
	w, h := courtSize(width, height)
	if err := g.session.Resize(w, h); err != nil {
		return fmt.Errorf("game: resize: %w", err)
	}
	return nil
}

// Step feeds one tick of input to the session and advances it.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	for _, p := range []core.PlayerID{core.Player1, core.Player2} {
		frame := in.Player(p)
		for _, dk := range directionKeys {
			if frame.Has(dk.action) {
				g.session.HandleKey(pong.KeyEvent{Player: p, Code: dk.code, Pressed: true})
			}
			if frame.Released(dk.action) {
				g.session.HandleKey(pong.KeyEvent{Player: p, Code: dk.code, Pressed: false})
			}
		}
	}
	if in.Any(core.ActionServe) {
		g.session.HandleKey(pong.KeyEvent{Code: pong.KeyServe, Pressed: true})
	}

	outcomes := g.session.Tick()

	var events []string
	for _, o := range outcomes {
		events = append(events, o.String())
		if o.Kind == pong.OutcomeGoal {
			g.logger.Info("goal",
				"variant", g.variant.ID,
				"scorer", o.Player,
				"score1", g.session.Score(core.Player1),
				"score2", g.session.Score(core.Player2),
			)
		}
	}
	if g.session.Ended() && g.banner.Shown && len(outcomes) > 0 {
		g.logger.Info("match over", "variant", g.variant.ID, "winner", g.session.Winner(), "message", g.banner.Message)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// directionKeys is ordered so a frame holding both directions replays the
// same way every run.
var directionKeys = []struct {
	action core.Action
	code   pong.KeyCode
}{
	{core.ActionUp, pong.KeyUp},
	{core.ActionDown, pong.KeyDown},
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: "error", GameOver: true}
	}
	return core.GameState{
		Score1:   g.session.Score(core.Player1),
		Score2:   g.session.Score(core.Player2),
		Phase:    g.session.State().String(),
		GameOver: g.session.Ended(),
		Winner:   g.session.Winner(),
	}
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		dst.SetBackground(core.ColorDefault)
		msg := "cannot start game"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}

	dst.SetBackground(g.banner.Tint())
	g.scene.Rasterise(dst, HUDRows)
	g.drawHUD(dst)

	switch {
	case g.banner.Shown:
		g.drawCenteredMessage(dst, g.banner.Message,
			fmt.Sprintf("%d - %d  |  R restart  |  B menu", g.session.Score(core.Player1), g.session.Score(core.Player2)))
	case g.session.State() == pong.StateIdle:
		g.drawCenteredMessage(dst, g.variant.Title, "Press SPACE to serve")
	}
}

// drawHUD draws labels and scores on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	centerX := dst.Width() / 2
	score1 := fmt.Sprintf("%d", int(g.scores.Value(core.Player1)))
	score2 := fmt.Sprintf("%d", int(g.scores.Value(core.Player2)))

	dst.DrawTextColored(centerX-3-len(score1), 0, score1, core.ColorPlayer1)
	dst.DrawTextColored(centerX+3, 0, score2, core.ColorPlayer2)

	label1, label2 := "P1", "P2"
	if !g.session.IsHuman(core.Player1) {
		label1 = "CPU"
	}
	if !g.session.IsHuman(core.Player2) {
		label2 = "CPU"
	}
	dst.DrawText(1, 0, label1)
	dst.DrawText(dst.Width()-len(label2)-1, 0, label2)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorFrame)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorText)

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// courtSize converts a screen size in cells to a court size in pixels.
func courtSize(cols, rows int) (w, h float64) {
	cols = max(cols, 1)
	rows = max(rows-HUDRows, 1)
	return float64(cols * CellW), float64(rows * CellH)
}
