package game

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Variant is a named preset layered over the loaded configuration.
type Variant struct {
	ID          string
	Title       string
	Description string
	apply       func(*config.PongConfig)
}

// Apply returns cfg with the variant's settings layered on top.
func (v Variant) Apply(cfg config.PongConfig) config.PongConfig {
	if v.apply != nil {
		v.apply(&cfg)
	}
	return cfg
}

var variants = []Variant{
	{
		ID:          "pong",
		Title:       "Pong",
		Description: "You against the computer, delayed serves",
		apply: func(c *config.PongConfig) {
			c.Controllers.Paddle1 = config.ControllerHuman
			c.Controllers.Paddle2 = config.ControllerAI
			c.Gameplay.ServeMode = config.ServeDelayed
			c.Gameplay.RequireStart = true
		},
	},
	{
		ID:          "pong-2p",
		Title:       "Pong (2 players)",
		Description: "Hot-seat: W/S against the arrow keys",
		apply: func(c *config.PongConfig) {
			c.Controllers.Paddle1 = config.ControllerHuman
			c.Controllers.Paddle2 = config.ControllerHuman
		},
	},
	{
		ID:          "pong-classic",
		Title:       "Pong Classic",
		Description: "Against the computer, instant serves, no start screen",
		apply: func(c *config.PongConfig) {
			c.Controllers.Paddle1 = config.ControllerHuman
			c.Controllers.Paddle2 = config.ControllerAI
			c.Gameplay.ServeMode = config.ServeImmediate
			c.Gameplay.RequireStart = false
		},
	},
}

// Variants returns every built-in variant.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}

// LookupVariant finds a variant by ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

func init() {
	for _, v := range variants {
		v := v // per-iteration copy; module targets go 1.21 loop semantics
		registry.Register(registry.GameInfo{
			ID:          v.ID,
			Title:       v.Title,
			Description: v.Description,
		}, func() registry.Game {
			return New(v)
		})
	}
}
