package config

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// DifficultyManager turns ball speed into AI reaction windows.
// Faster balls mean a higher level, and a higher level means a
// narrower, shorter window.
type DifficultyManager struct {
	cfg          DifficultyConfig
	ai           AIConfig
	initialSpeed float64
	maxSpeed     float64
}

// NewDifficultyManager creates a new difficulty manager for a config.
func NewDifficultyManager(cfg PongConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg.Difficulty,
		ai:           cfg.AI,
		initialSpeed: cfg.Ball.InitialSpeed,
		maxSpeed:     cfg.Ball.MaxSpeed,
	}
}

// Level returns the difficulty level (0.0 to 1.0) for the given ball speed.
func (d *DifficultyManager) Level(speed float64) float64 {
	if !d.cfg.Enabled {
		return d.cfg.InitialLevel
	}

	span := d.maxSpeed - d.initialSpeed
	if span <= 0 {
		span = 1 // Prevent division by zero
	}
	progress := core.ClampF((speed-d.initialSpeed)/span, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// ReactionRange returns the [lo, hi] window in ticks the AI draws its next
// reaction delay from. At level 0 it is [ReactionMin, ReactionMax]; at level 1
// it is [ReactionFloor, ReactionFloor+ReactionMin].
func (d *DifficultyManager) ReactionRange(speed float64) (lo, hi int) {
	level := d.Level(speed)

	loMin, loMax := float64(d.ai.ReactionMin), float64(d.ai.ReactionFloor)
	hiMin, hiMax := float64(d.ai.ReactionMax), float64(d.ai.ReactionFloor+d.ai.ReactionMin)
	if hiMax > hiMin {
		hiMax = hiMin
	}

	lo = int(math.Round(loMin + (loMax-loMin)*level))
	hi = int(math.Round(hiMin + (hiMax-hiMin)*level))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
