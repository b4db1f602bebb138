package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// It mirrors defaults/pong.yaml and is the base every loaded file is merged over.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Ball: BallConfig{
			Radius:        8,
			InitialSpeed:  4,
			SpeedStep:     2,
			MaxSpeed:      32,
			MaxServeAngle: 0.5,
		},
		Paddles: PaddleConfig{
			Radius:         64,
			Speed:          6,
			StepSize:       24,
			RenderOverscan: 4,
		},
		Controllers: ControllerConfig{
			Paddle1:  ControllerHuman,
			Paddle2:  ControllerAI,
			MoveMode: MoveStep,
		},
		Gameplay: GameplayConfig{
			WinThreshold:  22,
			ServeMode:     ServeDelayed,
			ServeDelayMin: 45,
			ServeDelayMax: 90,
			RequireStart:  true,
		},
		AI: AIConfig{
			ReactionMin:   8,
			ReactionMax:   30,
			ReactionFloor: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPongYAML
}
