package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the built-in configuration, used when no YAML
// source can be read. Decoding defaults/pong.yaml on top of it changes
// nothing; the per-variant keys are only set here.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Ball: BallConfig{
			Size:       10,
			Speed:      400,
			DirectionX: -1,
			DirectionY: 1,
		},
		Paddles: PaddlesConfig{
			Width:        10,
			HeightFactor: 0.2,
			Inset:        30,
			Speed:        900,
			BorderOffset: 0,
		},
		Collision: CollisionConfig{HitWidthMultiplier: 10},
		Rules:     RulesConfig{},
		Players:   PlayersConfig{Left: ControllerHuman, Right: ControllerPredictive},
		AI: AIConfig{
			Tolerance:      10,
			MaxReflections: 64,
		},
		Display: DisplayConfig{ShowFinalScore: true, CenterLine: true},
		Input:   InputConfig{HoldTicks: 8},
		Timing: TimingConfig{
			MaxStep: 0.004,
			MaxLag:  0.25,
		},
	}
}
