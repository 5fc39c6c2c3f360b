package sim

// Side identifies which end of the field a paddle guards.
type Side int

const (
	SideLeft  Side = iota // near side, the human by convention
	SideRight             // far side, the opponent
)

// Sign returns -1 for the left side and +1 for the right side.
func (s Side) Sign() float64 {
	if s == SideLeft {
		return -1
	}
	return 1
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Strategy selects how an AI paddle picks its target.
type Strategy int

const (
	// StrategyFullPrediction traces the ball through wall reflections.
	StrategyFullPrediction Strategy = iota
	// StrategyDirectTracking follows the ball's current height.
	StrategyDirectTracking
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyFullPrediction:
		return "predictive"
	case StrategyDirectTracking:
		return "tracking"
	default:
		return "unknown"
	}
}

// ControlKind says what moves a paddle.
type ControlKind int

const (
	ControlHuman ControlKind = iota
	ControlAI
)

// Control is the tagged variant HumanControlled | AIControlled(strategy).
// Strategy is only meaningful when Kind is ControlAI.
type Control struct {
	Kind     ControlKind
	Strategy Strategy
}

// Human returns a human-controlled paddle control.
func Human() Control {
	return Control{Kind: ControlHuman}
}

// AI returns an AI-controlled paddle control using the given strategy.
func AI(strategy Strategy) Control {
	return Control{Kind: ControlAI, Strategy: strategy}
}

// IsAI reports whether the paddle is driven by the AI predictor.
func (c Control) IsAI() bool {
	return c.Kind == ControlAI
}

// String returns "human", "predictive" or "tracking".
func (c Control) String() string {
	if c.Kind == ControlHuman {
		return "human"
	}
	return c.Strategy.String()
}

// DirectionInverter is the collision surface attached to a paddle.
// Axis components equal to 1 flip the matching ball direction component.
type DirectionInverter struct {
	Axis         Vec3
	AwardsPoints bool
}

// Ball is the single ball in play.
type Ball struct {
	Position        Vec3
	Size            Size
	Direction       Vec3
	Speed           float64
	SpeedMultiplier float64
}

// Box returns the ball's collision box with its width scaled by hitWidth.
func (b Ball) Box(hitWidth float64) Box {
	return Box{
		Center: b.Position,
		Size:   Size{W: b.Size.W * hitWidth, H: b.Size.H},
	}
}

// Paddle is one of the two vertical bars.
type Paddle struct {
	Side         Side
	Position     Vec3
	Size         Size
	Direction    Vec3 // only Y is ever non-zero
	Speed        float64
	BorderOffset float64
	Control      Control
	Inverter     DirectionInverter
}

// Box returns the paddle's inverter extent.
func (p Paddle) Box() Box {
	return Box{Center: p.Position, Size: p.Size}
}

// Winner records who won the last rally.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerPlayer1
	WinnerPlayer2
)

// String returns a human-readable name for the winner.
func (w Winner) String() string {
	switch w {
	case WinnerNone:
		return "none"
	case WinnerPlayer1:
		return "player1"
	case WinnerPlayer2:
		return "player2"
	default:
		return "unknown"
	}
}

// GameState drives which systems run each frame.
type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game is the score and result of the current rally.
type Game struct {
	Score  int
	Winner Winner
}

// Reset clears the score and winner.
func (g *Game) Reset() {
	g.Score = 0
	g.Winner = WinnerNone
}

// Field is the play-field, centred on the origin with Y pointing up.
type Field struct {
	Width  float64
	Height float64
}

// HalfWidth returns Width/2.
func (f Field) HalfWidth() float64 {
	return f.Width * 0.5
}

// HalfHeight returns Height/2.
func (f Field) HalfHeight() float64 {
	return f.Height * 0.5
}

// World holds every entity of a rally. The set is fixed: one ball and one
// paddle per side.
type World struct {
	Field Field
	Ball  Ball
	Left  Paddle
	Right Paddle
}

// Paddles returns pointers to both paddles, left first.
func (w *World) Paddles() [2]*Paddle {
	return [2]*Paddle{&w.Left, &w.Right}
}

// Paddle returns the paddle guarding the given side.
func (w *World) Paddle(side Side) *Paddle {
	if side == SideLeft {
		return &w.Left
	}
	return &w.Right
}

// BallLimitY returns the highest centre Y the ball may reach before it
// counts as touching a wall. The lowest is its negation.
func (w *World) BallLimitY() float64 {
	return w.Field.HalfHeight() - w.Ball.Size.H*0.5
}
