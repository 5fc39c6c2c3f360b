package config

import "fmt"

// Variant is one of the built-in Pong rule sets.
type Variant string

const (
	// VariantClassic: human vs an opponent that follows the ball directly.
	VariantClassic Variant = "classic"
	// VariantPredictive: human vs an opponent that traces wall reflections.
	VariantPredictive Variant = "predictive"
	// VariantDemo: both paddles are predictive AIs.
	VariantDemo Variant = "demo"
)

// Variants lists the built-in variants in menu order.
func Variants() []Variant {
	return []Variant{VariantClassic, VariantPredictive, VariantDemo}
}

// ParseVariant returns the variant with the given name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("config: unknown pong variant %q", name)
}

// ApplyPongVariant sets the players, paddle speed, hit width, rules and
// display.show_final_score of v. Everything else in cfg is left alone.
func ApplyPongVariant(cfg *PongConfig, v Variant) error {
	switch v {
	case VariantClassic:
		cfg.Players = PlayersConfig{Left: ControllerHuman, Right: ControllerTracking}
		cfg.Paddles.Speed = 700
		cfg.Collision.HitWidthMultiplier = 1
		cfg.Rules = RulesConfig{BallEdge: true, ReleaseStops: true}
		cfg.Display.ShowFinalScore = false
	case VariantPredictive:
		cfg.Players = PlayersConfig{Left: ControllerHuman, Right: ControllerPredictive}
		cfg.Paddles.Speed = 900
		cfg.Collision.HitWidthMultiplier = 10
		cfg.Rules = RulesConfig{}
		cfg.Display.ShowFinalScore = true
	case VariantDemo:
		cfg.Players = PlayersConfig{Left: ControllerPredictive, Right: ControllerPredictive}
		cfg.Paddles.Speed = 900
		cfg.Collision.HitWidthMultiplier = 10
		cfg.Rules = RulesConfig{}
		cfg.Display.ShowFinalScore = true
	default:
		return fmt.Errorf("config: unknown pong variant %q", v)
	}
	return nil
}
