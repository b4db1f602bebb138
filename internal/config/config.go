// Package config provides YAML-based game configuration loading and
// difficulty management for pong.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// ControllerKind selects who drives a paddle.
type ControllerKind string

const (
	ControllerHuman ControllerKind = "human"
	ControllerAI    ControllerKind = "ai"
)

// ServeMode selects what happens after a goal.
type ServeMode string

const (
	// ServeImmediate re-randomizes the ball in the same tick as the goal.
	ServeImmediate ServeMode = "immediate"
	// ServeDelayed parks the ball at center and serves after a timer.
	ServeDelayed ServeMode = "delayed"
)

// MoveMode selects how key presses move a human paddle.
type MoveMode string

const (
	// MoveContinuous holds a direction between key-down and key-up.
	MoveContinuous MoveMode = "continuous"
	// MoveStep moves a fixed step on every key-down.
	MoveStep MoveMode = "step"
)

// PongConfig contains all configuration for a pong session.
// A single config describes every supported variant.
type PongConfig struct {
	Ball        BallConfig       `yaml:"ball"`
	Paddles     PaddleConfig     `yaml:"paddles"`
	Controllers ControllerConfig `yaml:"controllers"`
	Gameplay    GameplayConfig   `yaml:"gameplay"`
	AI          AIConfig         `yaml:"ai"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// BallConfig defines ball physics.
type BallConfig struct {
	Radius        float64 `yaml:"radius"`
	InitialSpeed  float64 `yaml:"initial_speed"`
	SpeedStep     float64 `yaml:"speed_step"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MaxServeAngle float64 `yaml:"max_serve_angle"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	StepSize       float64 `yaml:"step_size"`
	RenderOverscan float64 `yaml:"render_overscan"`
}

// ControllerConfig selects paddle controllers.
type ControllerConfig struct {
	Paddle1  ControllerKind `yaml:"paddle1"`
	Paddle2  ControllerKind `yaml:"paddle2"`
	MoveMode MoveMode       `yaml:"move_mode"`
}

// GameplayConfig defines scoring and serving.
type GameplayConfig struct {
	WinThreshold  int       `yaml:"win_threshold"`
	ServeMode     ServeMode `yaml:"serve_mode"`
	ServeDelayMin int       `yaml:"serve_delay_min"`
	ServeDelayMax int       `yaml:"serve_delay_max"`
	RequireStart  bool      `yaml:"require_start"`
}

// AIConfig defines AI reaction windows in ticks.
type AIConfig struct {
	ReactionMin   int `yaml:"reaction_min"`
	ReactionMax   int `yaml:"reaction_max"`
	ReactionFloor int `yaml:"reaction_floor"`
}

// DifficultyConfig defines how AI reactions sharpen during a rally.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
}

// HalfDiagonal returns the effective half-height of a paddle square rotated 45 degrees.
func (c PaddleConfig) HalfDiagonal() float64 {
	return c.Radius / math.Sqrt2
}

// Validate checks the config for values that would make a session meaningless.
// A failing config is a startup error.
func (c PongConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Ball.Radius > 0, "ball.radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.InitialSpeed > 0, "ball.initial_speed must be positive, got %v", c.Ball.InitialSpeed)
	check(c.Ball.SpeedStep >= 0, "ball.speed_step must not be negative, got %v", c.Ball.SpeedStep)
	check(c.Ball.MaxSpeed >= c.Ball.InitialSpeed, "ball.max_speed %v is below initial_speed %v", c.Ball.MaxSpeed, c.Ball.InitialSpeed)
	check(c.Ball.MaxServeAngle > 0 && c.Ball.MaxServeAngle <= 1, "ball.max_serve_angle must be in (0, 1], got %v", c.Ball.MaxServeAngle)

	check(c.Paddles.Radius > 0, "paddles.radius must be positive, got %v", c.Paddles.Radius)
	check(c.Paddles.Speed > 0, "paddles.speed must be positive, got %v", c.Paddles.Speed)
	check(c.Paddles.StepSize > 0, "paddles.step_size must be positive, got %v", c.Paddles.StepSize)
	check(c.Paddles.RenderOverscan >= 0 && c.Paddles.RenderOverscan < c.Paddles.HalfDiagonal(),
		"paddles.render_overscan must be in [0, half diagonal), got %v", c.Paddles.RenderOverscan)

	check(validController(c.Controllers.Paddle1), "controllers.paddle1 %q is not human or ai", c.Controllers.Paddle1)
	check(validController(c.Controllers.Paddle2), "controllers.paddle2 %q is not human or ai", c.Controllers.Paddle2)
	check(c.Controllers.MoveMode == MoveStep || c.Controllers.MoveMode == MoveContinuous,
		"controllers.move_mode %q is not step or continuous", c.Controllers.MoveMode)

	check(c.Gameplay.WinThreshold > 0, "gameplay.win_threshold must be positive, got %d", c.Gameplay.WinThreshold)
	check(c.Gameplay.ServeMode == ServeImmediate || c.Gameplay.ServeMode == ServeDelayed,
		"gameplay.serve_mode %q is not immediate or delayed", c.Gameplay.ServeMode)
	check(c.Gameplay.ServeDelayMin >= 0 && c.Gameplay.ServeDelayMax >= c.Gameplay.ServeDelayMin,
		"gameplay serve delay range [%d, %d] is invalid", c.Gameplay.ServeDelayMin, c.Gameplay.ServeDelayMax)

	check(c.AI.ReactionFloor >= 0, "ai.reaction_floor must not be negative, got %d", c.AI.ReactionFloor)
	check(c.AI.ReactionMin >= c.AI.ReactionFloor, "ai.reaction_min %d is below reaction_floor %d", c.AI.ReactionMin, c.AI.ReactionFloor)
	check(c.AI.ReactionMax >= c.AI.ReactionMin, "ai.reaction_max %d is below reaction_min %d", c.AI.ReactionMax, c.AI.ReactionMin)

	check(c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1,
		"difficulty.initial_level must be in [0, 1], got %v", c.Difficulty.InitialLevel)

	return errors.Join(errs...)
}

func validController(k ControllerKind) bool {
	return k == ControllerHuman || k == ControllerAI
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	// DifficultyFixed keeps the AI at the normal level regardless of ball speed.
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (easy, normal, hard, fixed)", ErrInvalid, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal, DifficultyFixed:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
