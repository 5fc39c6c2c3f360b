// Package config loads the YAML configuration for Pong and applies the
// built-in variants on top of it.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all configuration for a Pong match.
// Geometry is in logical field units with the origin at the field centre.
type PongConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Ball      BallConfig      `yaml:"ball"`
	Paddles   PaddlesConfig   `yaml:"paddles"`
	Collision CollisionConfig `yaml:"collision"`
	Rules     RulesConfig     `yaml:"rules"`
	Players   PlayersConfig   `yaml:"players"`
	AI        AIConfig        `yaml:"ai"`
	Display   DisplayConfig   `yaml:"display"`
	Input     InputConfig     `yaml:"input"`
	Timing    TimingConfig    `yaml:"timing"`
}

// FieldConfig is the logical play-field size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines the ball at the start of a rally.
type BallConfig struct {
	Size       float64 `yaml:"size"`
	Speed      float64 `yaml:"speed"`       // units per second
	DirectionX float64 `yaml:"direction_x"` // -1 or 1
	DirectionY float64 `yaml:"direction_y"` // -1, 0 or 1
}

// PaddlesConfig defines both paddles.
type PaddlesConfig struct {
	Width        float64 `yaml:"width"`
	HeightFactor float64 `yaml:"height_factor"` // fraction of the field height
	Inset        float64 `yaml:"inset"`         // distance from field edge to paddle centre
	Speed        float64 `yaml:"speed"`
	BorderOffset float64 `yaml:"border_offset"`
}

// CollisionConfig tunes paddle hit detection.
type CollisionConfig struct {
	HitWidthMultiplier float64 `yaml:"hit_width_multiplier"`
}

// RulesConfig holds the small rule differences between variants.
type RulesConfig struct {
	BallEdge     bool `yaml:"ball_edge"`     // game over on the ball's edge, not its centre
	ReleaseStops bool `yaml:"release_stops"` // human paddle stops when no key is held
}

// PlayersConfig names the controller of each paddle.
type PlayersConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Controller names accepted in PlayersConfig.
const (
	ControllerHuman      = "human"
	ControllerPredictive = "predictive"
	ControllerTracking   = "tracking"
)

// AIConfig tunes the AI controller.
type AIConfig struct {
	Tolerance      float64 `yaml:"tolerance"`
	MaxReflections int     `yaml:"max_reflections"`
}

// DisplayConfig controls what the game draws.
type DisplayConfig struct {
	ShowFinalScore bool `yaml:"show_final_score"`
	CenterLine     bool `yaml:"center_line"`
}

// InputConfig adapts key presses to held keys.
type InputConfig struct {
	// HoldTicks is how many platform ticks a direction counts as held
	// after its last key press.
	HoldTicks int `yaml:"hold_ticks"`
}

// TimingConfig controls how elapsed time is fed to the simulation.
type TimingConfig struct {
	MaxStep float64 `yaml:"max_step"` // longest single simulation step, in seconds
	MaxLag  float64 `yaml:"max_lag"`  // elapsed time beyond this is dropped
}

// Validate reports every invalid value in the config.
func (c PongConfig) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field: size must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Ball.Size <= 0 {
		errs = append(errs, fmt.Errorf("ball: size must be positive, got %g", c.Ball.Size))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball: speed must be positive, got %g", c.Ball.Speed))
	}
	if c.Ball.DirectionX != -1 && c.Ball.DirectionX != 1 {
		errs = append(errs, fmt.Errorf("ball: direction_x must be -1 or 1, got %g", c.Ball.DirectionX))
	}
	if c.Ball.DirectionY != -1 && c.Ball.DirectionY != 0 && c.Ball.DirectionY != 1 {
		errs = append(errs, fmt.Errorf("ball: direction_y must be -1, 0 or 1, got %g", c.Ball.DirectionY))
	}
	if c.Paddles.Width <= 0 {
		errs = append(errs, fmt.Errorf("paddles: width must be positive, got %g", c.Paddles.Width))
	}
	if c.Paddles.HeightFactor <= 0 || c.Paddles.HeightFactor > 1 {
		errs = append(errs, fmt.Errorf("paddles: height_factor must be in (0, 1], got %g", c.Paddles.HeightFactor))
	}
	if c.Paddles.Inset <= 0 || c.Paddles.Inset >= c.Field.Width/2 {
		errs = append(errs, fmt.Errorf("paddles: inset must be within (0, %g), got %g", c.Field.Width/2, c.Paddles.Inset))
	}
	if c.Paddles.Speed < 0 {
		errs = append(errs, fmt.Errorf("paddles: speed must not be negative, got %g", c.Paddles.Speed))
	}
	if c.Paddles.BorderOffset < 0 {
		errs = append(errs, fmt.Errorf("paddles: border_offset must not be negative, got %g", c.Paddles.BorderOffset))
	}
	if c.Collision.HitWidthMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("collision: hit_width_multiplier must be positive, got %g", c.Collision.HitWidthMultiplier))
	}
	for _, p := range []struct{ side, name string }{{"left", c.Players.Left}, {"right", c.Players.Right}} {
		if !validController(p.name) {
			errs = append(errs, fmt.Errorf("players: unknown %s controller %q", p.side, p.name))
		}
	}
	if c.AI.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("ai: tolerance must not be negative, got %g", c.AI.Tolerance))
	}
	if c.AI.MaxReflections < 0 {
		errs = append(errs, fmt.Errorf("ai: max_reflections must not be negative, got %d", c.AI.MaxReflections))
	}
	if c.Input.HoldTicks < 0 {
		errs = append(errs, fmt.Errorf("input: hold_ticks must not be negative, got %d", c.Input.HoldTicks))
	}
	if c.Timing.MaxStep <= 0 {
		errs = append(errs, fmt.Errorf("timing: max_step must be positive, got %g", c.Timing.MaxStep))
	}
	if c.Timing.MaxLag < c.Timing.MaxStep {
		errs = append(errs, fmt.Errorf("timing: max_lag %g is shorter than max_step %g", c.Timing.MaxLag, c.Timing.MaxStep))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid pong config: %w", errors.Join(errs...))
	}
	return nil
}

func validController(name string) bool {
	switch name {
	case ControllerHuman, ControllerPredictive, ControllerTracking:
		return true
	}
	return false
}
