package pong

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Options are the host-provided parts of a session.
// Nil collaborators are replaced by no-ops.
type Options struct {
	Width, Height float64
	Seed          int64

	Scene  Scene
	Scores ScoreDisplay
	Banner Banner
}

// Stats are running counters for a session.
type Stats struct {
	Ticks        uint64
	Serves       int
	Hits         int
	WallBounces  int
	Rally        int // hits since the last serve
	LongestRally int
}

// side is one paddle and whatever drives it.
type side struct {
	paddle Paddle
	human  *HumanController
	ai     *AIController
}

// Session is one match. It owns all simulation state.
type Session struct {
	cfg   config.PongConfig
	vp    Viewport
	ball  Ball
	sides [2]side
	score *ScoreTracker
	state State

	timers     Timers
	tick       uint64
	generation uint64
	rng        *rand.Rand

	scene       Scene
	banner      Banner
	bannerShown bool

	stats Stats
}

// NewSession validates cfg and builds a session laid out for the given
// canvas. Configuration and dimension errors abort construction.
func NewSession(cfg config.PongConfig, opts Options) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pong: %w", err)
	}
	vp, err := NewViewport(opts.Width, opts.Height, cfg.Paddles)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:    cfg,
		ball:   NewBall(cfg.Ball),
		score:  NewScoreTracker(cfg.Gameplay.WinThreshold, opts.Scores),
		rng:    rand.New(rand.NewSource(opts.Seed)),
		scene:  opts.Scene,
		banner: opts.Banner,
	}
	if s.scene == nil {
		s.scene = nopScene{}
	}
	if s.banner == nil {
		s.banner = nopBanner{}
	}

	difficulty := config.NewDifficultyManager(cfg)
	kinds := [2]config.ControllerKind{cfg.Controllers.Paddle1, cfg.Controllers.Paddle2}
	for i, kind := range kinds {
		sd := &s.sides[i]
		sd.paddle.Radius = cfg.Paddles.Radius
		if kind == config.ControllerAI {
			sd.ai = NewAIController(difficulty, s.rng)
		} else {
			sd.human = NewHumanController(cfg.Controllers.MoveMode, cfg.Paddles)
		}
	}

	s.layout(vp)
	s.ball.Center(vp.Center)

	if !cfg.Gameplay.RequireStart {
		s.beginServe()
	}
	s.present()
	return s, nil
}

// Config returns the session's configuration.
func (s *Session) Config() config.PongConfig {
	return s.cfg
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Ended reports whether the match is over.
func (s *Session) Ended() bool {
	return s.state == StateGameOver
}

// Winner returns the winner, or PlayerNone while the match is open.
func (s *Session) Winner() core.PlayerID {
	return s.score.Winner()
}

// Score returns a player's points.
func (s *Session) Score(p core.PlayerID) int {
	return s.score.Score(p)
}

// Ball returns a copy of the ball.
func (s *Session) Ball() Ball {
	return s.ball
}

// Paddle returns a copy of a player's paddle.
func (s *Session) Paddle(p core.PlayerID) Paddle {
	if sd := s.side(p); sd != nil {
		return sd.paddle
	}
	return Paddle{}
}

// IsHuman reports whether a player's paddle is driven by key events.
func (s *Session) IsHuman(p core.PlayerID) bool {
	sd := s.side(p)
	return sd != nil && sd.human != nil
}

// Viewport returns the current layout.
func (s *Session) Viewport() Viewport {
	return s.vp
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// PendingEvents returns the number of queued deferred events.
func (s *Session) PendingEvents() int {
	return s.timers.Len()
}

// HandleKey applies a key event. It takes effect before the next tick.
func (s *Session) HandleKey(ev KeyEvent) {
	if s.state == StateGameOver {
		return
	}

	if ev.Code == KeyServe {
		if ev.Pressed && s.state == StateIdle {
			s.beginServe()
			s.present()
		}
		return
	}

	sd := s.side(ev.Player)
	if sd == nil || sd.human == nil {
		return
	}
	sd.human.Key(&sd.paddle, ev.Code, ev.Pressed)
}

// Resize recomputes the layout for a new canvas size. The ball is moved
// to the centre keeping its direction and speed, and both paddles are
// re-anchored. Resizing an ended match only moves shapes.
func (s *Session) Resize(width, height float64) error {
	vp, err := NewViewport(width, height, s.cfg.Paddles)
	if err != nil {
		return err
	}
	s.layout(vp)
	s.ball.Position = vp.Center
	s.present()
	return nil
}

// Tick advances the simulation by one frame and returns the collisions
// it produced. An ended match does not tick.
func (s *Session) Tick() []Outcome {
	if s.state == StateGameOver {
		return nil
	}
	s.tick++
	s.stats.Ticks++

	for _, ev := range s.timers.PopDue(s.tick) {
		s.fire(ev)
	}

	for i := range s.sides {
		sd := &s.sides[i]
		switch {
		case sd.ai != nil:
			sd.ai.Tick(&sd.paddle, &s.ball)
		case sd.human != nil:
			sd.human.Tick(&sd.paddle)
		}
	}

	var outcomes []Outcome
	if s.state == StatePlaying {
		outcomes = Resolve(&s.ball, &s.sides[0].paddle, &s.sides[1].paddle, s.vp, s.cfg.Paddles.RenderOverscan)
		scored := s.apply(outcomes)
		if !scored {
			s.ball.Tick()
		}
	}

	s.present()
	return outcomes
}

// apply reacts to collision outcomes and reports whether a goal happened.
func (s *Session) apply(outcomes []Outcome) bool {
	scored := false
	for _, o := range outcomes {
		switch o.Kind {
		case OutcomeWallBounce:
			s.stats.WallBounces++
			s.react()
		case OutcomePaddleHit:
			s.stats.Hits++
			s.stats.Rally++
			s.stats.LongestRally = max(s.stats.LongestRally, s.stats.Rally)
			s.react()
		case OutcomeGoal:
			scored = true
			switch s.score.Increment(o.Player) {
			case SignalWin:
				s.finish()
			case SignalContinue:
				s.beginServe()
			}
		}
	}
	return scored
}

// Render places every shape at its current position and presents the frame.
func (s *Session) Render() {
	s.present()
}

func (s *Session) present() {
	s.scene.Place(ShapeBall, s.ball.Position, 0)
	s.scene.Place(ShapePaddle1, s.sides[0].paddle.Position, PaddleRotation)
	s.scene.Place(ShapePaddle2, s.sides[1].paddle.Position, PaddleRotation)
	for i, y := range s.vp.NetDashes {
		s.scene.Place(NetDash(i), core.V(s.vp.Center.X, y), NetRotation)
	}
	s.scene.Present()
}

// layout installs a new viewport and re-anchors the paddles.
func (s *Session) layout(vp Viewport) {
	s.vp = vp
	for i, p := range []core.PlayerID{core.Player1, core.Player2} {
		pd := &s.sides[i].paddle
		pd.Bounds = vp.PlayerBounds
		pd.Position = core.V(vp.PaddleX(p), vp.PlayerBounds.Clamp(vp.Center.Y))
	}
}

// beginServe enters Serving. Immediate mode serves at once; delayed mode
// parks the ball and queues a serve event.
func (s *Session) beginServe() {
	s.state = StateServing
	s.generation++
	s.ball.Center(s.vp.Center)

	if s.cfg.Gameplay.ServeMode == config.ServeImmediate {
		s.serve()
		return
	}

	delay := core.RandIntRange(s.rng, s.cfg.Gameplay.ServeDelayMin, s.cfg.Gameplay.ServeDelayMax)
	s.timers.Schedule(Event{
		Kind:       EventServe,
		Due:        s.tick + uint64(delay),
		Generation: s.generation,
	})
}

func (s *Session) fire(ev Event) {
	if ev.Generation != s.generation {
		return
	}
	switch ev.Kind {
	case EventServe:
		if s.state == StateServing {
			s.serve()
		}
	}
}

func (s *Session) serve() {
	s.ball.Reset(s.rng)
	s.state = StatePlaying
	s.stats.Serves++
	s.stats.Rally = 0
	s.react()
}

// react tells AI paddles the ball changed course.
func (s *Session) react() {
	for i := range s.sides {
		if sd := &s.sides[i]; sd.ai != nil {
			sd.ai.React(&sd.paddle, &s.ball)
		}
	}
}

func (s *Session) finish() {
	s.state = StateGameOver
	s.generation++
	s.timers.Clear()

	if s.bannerShown {
		return
	}
	s.bannerShown = true
	msg, won := s.result()
	s.banner.Show(msg, won)
}

// result builds the banner text for the finished match.
func (s *Session) result() (string, bool) {
	winner := s.score.Winner()
	winnerHuman := s.IsHuman(winner)
	loserHuman := s.IsHuman(winner.Other())

	switch {
	case winnerHuman && !loserHuman:
		return "YOU WIN", true
	case !winnerHuman && loserHuman:
		return "YOU LOSE", false
	default:
		return fmt.Sprintf("%s WINS", playerLabel(winner)), winnerHuman
	}
}

func (s *Session) side(p core.PlayerID) *side {
	idx, ok := playerIndex(p)
	if !ok {
		return nil
	}
	return &s.sides[idx]
}

func playerLabel(p core.PlayerID) string {
	if p == core.Player2 {
		return "PLAYER 2"
	}
	return "PLAYER 1"
}
