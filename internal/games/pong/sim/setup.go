package sim

import (
	"errors"
	"fmt"
)

// Default geometry and tuning, matching the predictive variant.
const (
	DefaultFieldWidth   = 800.0
	DefaultFieldHeight  = 600.0
	DefaultBallSize     = 10.0
	DefaultBallSpeed    = 400.0
	DefaultPaddleWidth  = 10.0
	DefaultPaddleFactor = 0.2 // paddle height as a fraction of field height
	DefaultPaddleInset  = 30.0
	DefaultPaddleSpeed  = 900.0
	DefaultBorderOffset = 0.0
	DefaultHitWidth     = 10.0
	DefaultTolerance    = 10.0
	DefaultReflections  = 64
)

// AIParams tunes the AI controller.
type AIParams struct {
	// Tolerance is the dead zone around the target, in field units.
	Tolerance float64
	// MaxReflections caps the reflection tracing loop. The geometric bound
	// is used when it is lower.
	MaxReflections int
}

// Setup describes everything needed to build a World and run it.
type Setup struct {
	Field Field

	BallSize      Size
	BallSpeed     float64
	BallDirection Vec3

	PaddleSize   Size
	PaddleInset  float64 // distance from the field edge to the paddle centre
	PaddleSpeed  float64
	BorderOffset float64

	LeftControl  Control
	RightControl Control

	// HitWidthMultiplier widens the ball's collision box horizontally.
	HitWidthMultiplier float64
	// BallEdge makes the game-over check use the ball's leading edge
	// instead of its centre.
	BallEdge bool
	// ReleaseStops zeroes a human paddle's direction when no key is held.
	// When false the paddle keeps its last direction.
	ReleaseStops bool

	AI AIParams
}

// DefaultSetup returns a human-vs-predictive-AI setup on an 800x600 field.
func DefaultSetup() Setup {
	return Setup{
		Field:              Field{Width: DefaultFieldWidth, Height: DefaultFieldHeight},
		BallSize:           Size{W: DefaultBallSize, H: DefaultBallSize},
		BallSpeed:          DefaultBallSpeed,
		BallDirection:      V3(-1, 1, 0),
		PaddleSize:         Size{W: DefaultPaddleWidth, H: DefaultFieldHeight * DefaultPaddleFactor},
		PaddleInset:        DefaultPaddleInset,
		PaddleSpeed:        DefaultPaddleSpeed,
		BorderOffset:       DefaultBorderOffset,
		LeftControl:        Human(),
		RightControl:       AI(StrategyFullPrediction),
		HitWidthMultiplier: DefaultHitWidth,
		AI: AIParams{
			Tolerance:      DefaultTolerance,
			MaxReflections: DefaultReflections,
		},
	}
}

// Validate checks that the setup describes a playable field.
func (s Setup) Validate() error {
	var errs []error

	if s.Field.Width <= 0 || s.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field must be positive, got %gx%g", s.Field.Width, s.Field.Height))
	}
	if s.BallSize.W <= 0 || s.BallSize.H <= 0 {
		errs = append(errs, fmt.Errorf("ball size must be positive, got %gx%g", s.BallSize.W, s.BallSize.H))
	}
	if s.BallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive, got %g", s.BallSpeed))
	}
	if !unitComponent(s.BallDirection.X) || !unitComponent(s.BallDirection.Y) || !unitComponent(s.BallDirection.Z) {
		errs = append(errs, fmt.Errorf("ball direction components must be -1, 0 or 1, got %v", s.BallDirection))
	}
	if s.BallDirection.X == 0 {
		errs = append(errs, errors.New("ball direction must have a horizontal component"))
	}
	if s.PaddleSize.W <= 0 || s.PaddleSize.H <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %gx%g", s.PaddleSize.W, s.PaddleSize.H))
	}
	if s.PaddleSize.H+2*s.BorderOffset > s.Field.Height {
		errs = append(errs, fmt.Errorf("paddle height %g with border offset %g does not fit field height %g",
			s.PaddleSize.H, s.BorderOffset, s.Field.Height))
	}
	if s.BorderOffset < 0 {
		errs = append(errs, fmt.Errorf("border offset must not be negative, got %g", s.BorderOffset))
	}
	if s.PaddleInset <= 0 || s.PaddleInset >= s.Field.HalfWidth() {
		errs = append(errs, fmt.Errorf("paddle inset must be within (0, %g), got %g", s.Field.HalfWidth(), s.PaddleInset))
	}
	if s.PaddleSpeed < 0 {
		errs = append(errs, fmt.Errorf("paddle speed must not be negative, got %g", s.PaddleSpeed))
	}
	if s.HitWidthMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("hit width multiplier must be positive, got %g", s.HitWidthMultiplier))
	}
	if s.AI.Tolerance < 0 {
		errs = append(errs, fmt.Errorf("ai tolerance must not be negative, got %g", s.AI.Tolerance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("sim: invalid setup: %w", errors.Join(errs...))
	}
	return nil
}

func unitComponent(v float64) bool {
	return v == -1 || v == 0 || v == 1
}

// NewWorld places the ball at the centre and both paddles at their insets.
func NewWorld(s Setup) World {
	return World{
		Field: s.Field,
		Ball: Ball{
			Size:            s.BallSize,
			Direction:       s.BallDirection,
			Speed:           s.BallSpeed,
			SpeedMultiplier: 1.0,
		},
		Left:  newPaddle(s, SideLeft, s.LeftControl, true),
		Right: newPaddle(s, SideRight, s.RightControl, false),
	}
}

func newPaddle(s Setup, side Side, control Control, awardsPoints bool) Paddle {
	return Paddle{
		Side:         side,
		Position:     V3(side.Sign()*(s.Field.HalfWidth()-s.PaddleInset), 0, 0),
		Size:         s.PaddleSize,
		Speed:        s.PaddleSpeed,
		BorderOffset: s.BorderOffset,
		Control:      control,
		Inverter: DirectionInverter{
			Axis:         V3(1, 0, 0),
			AwardsPoints: awardsPoints,
		},
	}
}
