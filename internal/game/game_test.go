package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func newTestGame(t *testing.T, id string) *Game {
	t.Helper()
	v, ok := LookupVariant(id)
	if !ok {
		t.Fatalf("variant %q not found", id)
	}
	g := New(v)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	if g.Err() != nil {
		t.Fatalf("Reset error: %v", g.Err())
	}
	return g
}

func press(p core.PlayerID, a core.Action) core.MultiInputFrame {
	in := core.NewMultiInputFrame()
	in.Press(p, a)
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants() {
		if !registry.Exists(v.ID) {
			t.Errorf("variant %q not registered", v.ID)
		}
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", v.ID, err)
		}
		if g.Title() != v.Title {
			t.Errorf("Title() = %q, expected %q", g.Title(), v.Title)
		}
	}

	if _, ok := LookupVariant("tennis"); ok {
		t.Error("LookupVariant should fail for unknown IDs")
	}
}

func TestVariantApply(t *testing.T) {
	base := config.DefaultPongConfig()
	base.Gameplay.WinThreshold = 7
	base.Gameplay.ServeMode = config.ServeImmediate
	base.Gameplay.RequireStart = false

	tests := []struct {
		id           string
		paddle2      config.ControllerKind
		serveMode    config.ServeMode
		requireStart bool
	}{
		{"pong", config.ControllerAI, config.ServeDelayed, true},
		{"pong-2p", config.ControllerHuman, config.ServeImmediate, false},
		{"pong-classic", config.ControllerAI, config.ServeImmediate, false},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			v, _ := LookupVariant(tc.id)
			cfg := v.Apply(base)

			if cfg.Controllers.Paddle2 != tc.paddle2 {
				t.Errorf("Paddle2 = %q, expected %q", cfg.Controllers.Paddle2, tc.paddle2)
			}
			if cfg.Gameplay.ServeMode != tc.serveMode {
				t.Errorf("ServeMode = %q, expected %q", cfg.Gameplay.ServeMode, tc.serveMode)
			}
			if cfg.Gameplay.RequireStart != tc.requireStart {
				t.Errorf("RequireStart = %v, expected %v", cfg.Gameplay.RequireStart, tc.requireStart)
			}
			if cfg.Gameplay.WinThreshold != 7 {
				t.Errorf("variant should keep base threshold, got %d", cfg.Gameplay.WinThreshold)
			}
		})
	}

	if base.Controllers.Paddle2 != config.ControllerAI {
		t.Error("Apply should not modify its argument")
	}
}

func TestHotSeat(t *testing.T) {
	tests := []struct {
		id       string
		expected bool
	}{
		{"pong", false},
		{"pong-2p", true},
		{"pong-classic", false},
	}

	for _, tc := range tests {
		v, _ := LookupVariant(tc.id)
		if got := New(v).HotSeat(); got != tc.expected {
			t.Errorf("%s HotSeat() = %v, expected %v", tc.id, got, tc.expected)
		}
	}
}

func TestResetSizesCourt(t *testing.T) {
	g := newTestGame(t, "pong")
	vp := g.Session().Viewport()

	if vp.Width != 80*CellW || vp.Height != (24-HUDRows)*CellH {
		t.Errorf("court = %vx%v, expected %vx%v", vp.Width, vp.Height, 80*CellW, (24-HUDRows)*CellH)
	}
	if st := g.State(); st.Phase != "idle" || st.GameOver {
		t.Errorf("State() = %+v, expected idle", st)
	}
}

func TestServeAndMove(t *testing.T) {
	g := newTestGame(t, "pong")
	step := g.Config().Paddles.StepSize
	before := g.Session().Paddle(core.Player1).Position.Y

	g.Step(press(core.Player1, core.ActionUp))
	if got := g.Session().Paddle(core.Player1).Position.Y; got != before-step {
		t.Errorf("paddle1 Y = %v, expected %v", got, before-step)
	}

	res := g.Step(press(core.Player1, core.ActionServe))
	if res.State.Phase != "serving" {
		t.Errorf("Phase = %q after serve key, expected serving", res.State.Phase)
	}
}

func TestCourtSizeFloor(t *testing.T) {
	tests := []struct {
		cols, rows int
		w, h       float64
	}{
		{80, 24, 80 * CellW, 23 * CellH},
		{0, 0, CellW, CellH},
		{3, HUDRows, 3 * CellW, CellH},
	}

	for _, tc := range tests {
		if w, h := courtSize(tc.cols, tc.rows); w != tc.w || h != tc.h {
			t.Errorf("courtSize(%d, %d) = %vx%v, expected %vx%v", tc.cols, tc.rows, w, h, tc.w, tc.h)
		}
	}
}

func TestBothDirectionsInOneFrame(t *testing.T) {
	for run := 0; run < 20; run++ {
		g := newTestGame(t, "pong")
		pd := g.Session().Paddle(core.Player1)
		step := g.Config().Paddles.StepSize

		// Park the paddle against its upper bound
		for i := 0; i < 100; i++ {
			g.Step(press(core.Player1, core.ActionUp))
		}

		in := core.NewMultiInputFrame()
		in.Press(core.Player1, core.ActionUp)
		in.Press(core.Player1, core.ActionDown)
		g.Step(in)

		want := pd.Bounds.MinY + step
		if got := g.Session().Paddle(core.Player1).Position.Y; got != want {
			t.Fatalf("run %d: paddle1 Y = %v, expected %v (up applied before down)", run, got, want)
		}
	}
}

func TestHotSeatRoutesPlayer2(t *testing.T) {
	g := newTestGame(t, "pong-2p")
	step := g.Config().Paddles.StepSize
	before := g.Session().Paddle(core.Player2).Position.Y

	g.Step(press(core.Player2, core.ActionDown))

	if got := g.Session().Paddle(core.Player2).Position.Y; got != before+step {
		t.Errorf("paddle2 Y = %v, expected %v", got, before+step)
	}
	if got := g.Session().Paddle(core.Player1).Position.Y; got != before {
		t.Errorf("paddle1 should not move, Y = %v", got)
	}
}

func TestClassicStartsPlaying(t *testing.T) {
	g := newTestGame(t, "pong-classic")
	if st := g.State(); st.Phase != "playing" {
		t.Errorf("Phase = %q, expected playing", st.Phase)
	}
}

func TestResizeKeepsMatch(t *testing.T) {
	g := newTestGame(t, "pong-classic")
	for i := 0; i < 10; i++ {
		g.Step(core.NewMultiInputFrame())
	}

	if err := g.Resize(100, 31); err != nil {
		t.Fatalf("Resize error: %v", err)
	}
	vp := g.Session().Viewport()
	if vp.Width != 100*CellW || vp.Height != 30*CellH {
		t.Errorf("court = %vx%v after resize", vp.Width, vp.Height)
	}
	if g.State().Phase != "playing" {
		t.Errorf("Phase = %q after resize, expected playing", g.State().Phase)
	}
	if g.Session().Ball().Position != vp.Center {
		t.Errorf("ball at %v, expected centre %v", g.Session().Ball().Position, vp.Center)
	}
}

func TestRenderIdle(t *testing.T) {
	g := newTestGame(t, "pong")
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"P1", "CPU", "Press SPACE to serve", string(PaddleChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered screen missing %q", want)
		}
	}
	if screen.Background() != core.ColorDefault {
		t.Errorf("Background() = %v, expected default", screen.Background())
	}
}

func TestRenderGameOverTint(t *testing.T) {
	tests := []struct {
		won      bool
		expected core.Color
	}{
		{true, core.ColorDarkGreen},
		{false, core.ColorDarkRed},
	}

	for _, tc := range tests {
		g := newTestGame(t, "pong")
		g.banner.Show("DONE", tc.won)

		screen := core.NewScreen(80, 24)
		g.Render(screen)

		if screen.Background() != tc.expected {
			t.Errorf("won=%v: Background() = %v, expected %v", tc.won, screen.Background(), tc.expected)
		}
		if !strings.Contains(screen.String(), "DONE") {
			t.Errorf("won=%v: banner message not rendered", tc.won)
		}
	}
}

func TestTermSceneRasterise(t *testing.T) {
	cfg := config.DefaultPongConfig()
	s := NewTermScene(cfg)

	s.Place(pong.ShapePaddle1, core.V(100, 96), pong.PaddleRotation)
	s.Place(pong.ShapeBall, core.V(300, 40), 0)
	s.Place(pong.NetDash(0), core.V(200, 24), pong.NetRotation)

	screen := core.NewScreen(60, 20)
	s.Rasterise(screen, 0)
	if strings.ContainsRune(screen.String(), PaddleChar) {
		t.Fatal("nothing should be drawn before Present")
	}

	s.Present()
	s.Rasterise(screen, 0)

	tests := []struct {
		name     string
		col, row int
		expected rune
	}{
		{"paddle centre", 12, 6, PaddleChar},
		{"paddle tip above", 12, 4, PaddleChar},
		{"outside diamond corner", 8, 4, ' '},
		{"ball", 37, 2, BallChar},
		{"net dash", 25, 1, NetChar},
	}
	for _, tc := range tests {
		if got := screen.Get(tc.col, tc.row); got != tc.expected {
			t.Errorf("%s: cell (%d, %d) = %q, expected %q", tc.name, tc.col, tc.row, got, tc.expected)
		}
	}

	if pos, ok := s.Position(pong.ShapeBall); !ok || pos != core.V(300, 40) {
		t.Errorf("Position(ball) = %v, %v", pos, ok)
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, expected 1", s.Frames())
	}
}

func TestScoreBoardAndBanner(t *testing.T) {
	var sb ScoreBoard
	sb.WriteGlyphs(core.Player2, 3)
	sb.WriteGlyphs(core.PlayerNone, 9)

	if sb.Value(core.Player2) != 3 || sb.Value(core.Player1) != 0 {
		t.Errorf("values = %v/%v, expected 0/3", sb.Value(core.Player1), sb.Value(core.Player2))
	}

	var b EndBanner
	if b.Tint() != core.ColorDefault {
		t.Error("hidden banner should not tint")
	}
	b.Show("YOU LOSE", false)
	if b.Tint() != core.ColorDarkRed || !b.Shown {
		t.Errorf("Tint() = %v, expected dark red", b.Tint())
	}
}
