package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPongConfigMatchesEmbeddedYAML(t *testing.T) {
	parsed, err := ParsePong(GetDefaultYAML())
	if err != nil {
		t.Fatalf("ParsePong(embedded) error: %v", err)
	}
	if parsed != DefaultPongConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", parsed, DefaultPongConfig())
	}
	if err := parsed.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestParsePongPartialOverride(t *testing.T) {
	data := []byte(`
controllers:
  paddle2: human
gameplay:
  win_threshold: 5
  serve_mode: immediate
`)
	cfg, err := ParsePong(data)
	if err != nil {
		t.Fatalf("ParsePong error: %v", err)
	}

	if cfg.Controllers.Paddle2 != ControllerHuman {
		t.Errorf("Paddle2 = %q, expected human", cfg.Controllers.Paddle2)
	}
	if cfg.Gameplay.WinThreshold != 5 {
		t.Errorf("WinThreshold = %d, expected 5", cfg.Gameplay.WinThreshold)
	}
	if cfg.Gameplay.ServeMode != ServeImmediate {
		t.Errorf("ServeMode = %q, expected immediate", cfg.Gameplay.ServeMode)
	}
	// Untouched keys keep defaults
	if cfg.Ball.MaxSpeed != 32 {
		t.Errorf("Ball.MaxSpeed = %v, expected default 32", cfg.Ball.MaxSpeed)
	}
	if cfg.Controllers.Paddle1 != ControllerHuman {
		t.Errorf("Paddle1 = %q, expected default human", cfg.Controllers.Paddle1)
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  max_speed: 16\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong error: %v", err)
	}
	if cfg.Ball.MaxSpeed != 16 {
		t.Errorf("MaxSpeed = %v, expected 16", cfg.Ball.MaxSpeed)
	}
}

func TestLoadPongErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadPong(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error for missing custom config")
		}
	})

	t.Run("invalid radius", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("paddles:\n  radius: 0\n"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		_, err := LoadPong(path)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("LoadPong error = %v, expected ErrInvalid", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("ball: [1, 2"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := LoadPong(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"zero paddle radius", func(c *PongConfig) { c.Paddles.Radius = 0 }},
		{"negative paddle radius", func(c *PongConfig) { c.Paddles.Radius = -4 }},
		{"zero ball radius", func(c *PongConfig) { c.Ball.Radius = 0 }},
		{"max below initial speed", func(c *PongConfig) { c.Ball.MaxSpeed = 2 }},
		{"serve angle above one", func(c *PongConfig) { c.Ball.MaxServeAngle = 1.5 }},
		{"overscan past half diagonal", func(c *PongConfig) { c.Paddles.RenderOverscan = 50 }},
		{"unknown controller", func(c *PongConfig) { c.Controllers.Paddle2 = "robot" }},
		{"unknown move mode", func(c *PongConfig) { c.Controllers.MoveMode = "teleport" }},
		{"zero threshold", func(c *PongConfig) { c.Gameplay.WinThreshold = 0 }},
		{"unknown serve mode", func(c *PongConfig) { c.Gameplay.ServeMode = "later" }},
		{"inverted serve delay", func(c *PongConfig) { c.Gameplay.ServeDelayMin = 100 }},
		{"reaction max below min", func(c *PongConfig) { c.AI.ReactionMax = 1 }},
		{"level above one", func(c *PongConfig) { c.Difficulty.InitialLevel = 2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestHalfDiagonal(t *testing.T) {
	p := PaddleConfig{Radius: 64}
	got := p.HalfDiagonal()
	if got < 45.25 || got > 45.26 {
		t.Errorf("HalfDiagonal() = %v, expected ~45.2548", got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in      string
		level   float64
		enabled bool
	}{
		{"easy", 0.0, true},
		{"normal", 0.3, true},
		{"hard", 0.7, true},
		{"fixed", 0.3, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			preset, err := ParsePreset(tc.in)
			if err != nil {
				t.Fatalf("ParsePreset(%q) error: %v", tc.in, err)
			}
			cfg := DefaultPongConfig()
			ApplyPongPreset(&cfg, preset)
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
		})
	}

	if _, err := ParsePreset("insane"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParsePreset(insane) = %v, expected ErrInvalid", err)
	}

	// Empty preset leaves config untouched
	cfg := DefaultPongConfig()
	ApplyPongPreset(&cfg, "")
	if cfg != DefaultPongConfig() {
		t.Error("empty preset should not modify config")
	}
}

func TestReactionRange(t *testing.T) {
	cfg := DefaultPongConfig()
	dm := NewDifficultyManager(cfg)

	lo, hi := dm.ReactionRange(cfg.Ball.InitialSpeed)
	if lo != cfg.AI.ReactionMin || hi != cfg.AI.ReactionMax {
		t.Errorf("ReactionRange(initial) = [%d, %d], expected [%d, %d]",
			lo, hi, cfg.AI.ReactionMin, cfg.AI.ReactionMax)
	}

	lo, hi = dm.ReactionRange(cfg.Ball.MaxSpeed)
	if lo != cfg.AI.ReactionFloor || hi != cfg.AI.ReactionFloor+cfg.AI.ReactionMin {
		t.Errorf("ReactionRange(max) = [%d, %d], expected [%d, %d]",
			lo, hi, cfg.AI.ReactionFloor, cfg.AI.ReactionFloor+cfg.AI.ReactionMin)
	}

	// Window narrows monotonically with speed
	prevLo, prevHi := dm.ReactionRange(cfg.Ball.InitialSpeed)
	for speed := cfg.Ball.InitialSpeed; speed <= cfg.Ball.MaxSpeed; speed += cfg.Ball.SpeedStep {
		lo, hi := dm.ReactionRange(speed)
		if lo > prevLo || hi > prevHi {
			t.Errorf("ReactionRange(%v) = [%d, %d] widened from [%d, %d]", speed, lo, hi, prevLo, prevHi)
		}
		if lo > hi {
			t.Errorf("ReactionRange(%v) lo %d > hi %d", speed, lo, hi)
		}
		prevLo, prevHi = lo, hi
	}
}

func TestLevelDisabled(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(cfg.Ball.MaxSpeed); got != 0.5 {
		t.Errorf("Level() with difficulty disabled = %v, expected 0.5", got)
	}
}
