// Package pong adapts the Pong simulation to the platform's Game
// interface: it loads the variant's config, turns key presses and wall
// time into simulation input, and draws the field onto a core.Screen.
package pong

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong/sim"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var variantInfo = map[config.Variant]registry.GameInfo{
	config.VariantClassic: {
		ID:          string(config.VariantClassic),
		Title:       "Pong: Classic",
		Description: "You vs an opponent that chases the ball",
	},
	config.VariantPredictive: {
		ID:          string(config.VariantPredictive),
		Title:       "Pong: Predictive",
		Description: "You vs an opponent that reads the bounces",
	},
	config.VariantDemo: {
		ID:          string(config.VariantDemo),
		Title:       "Pong: Demo",
		Description: "Two predictive AIs play each other",
	},
}

// Game is one Pong match of a given variant.
type Game struct {
	variant config.Variant
	cfg     config.PongConfig
	cfgErr  error
	runtime core.RuntimeConfig
	sim     *sim.Simulation
	keys    heldKeys
	pending time.Duration // elapsed time not yet simulated
}

// New creates a game for the variant. Call Reset before stepping.
func New(v config.Variant) *Game {
	g := &Game{variant: v}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the variant name.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name of the variant.
func (g *Game) Title() string {
	if info, ok := variantInfo[g.variant]; ok {
		return info.Title
	}
	return "Pong"
}

// Reset loads the config and starts a fresh rally. A config that fails to
// load or validate is replaced by the built-in defaults; the error stays
// available from ConfigErr.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg, g.cfgErr = config.LoadVariant(runtime.Config, g.variant)
	g.keys = heldKeys{}
	g.pending = 0

	s, err := sim.New(SetupFromConfig(g.cfg))
	if err != nil {
		// Config validation passed but the derived setup did not.
		g.cfgErr = err
		var fallbackErr error
		g.cfg, s, fallbackErr = defaultSim(g.variant)
		if fallbackErr != nil {
			panic(fmt.Sprintf("pong: built-in %s config is unusable: %v", g.variant, fallbackErr))
		}
	}
	g.sim = s
}

// defaultSim builds the simulation from the built-in config of v.
func defaultSim(v config.Variant) (config.PongConfig, *sim.Simulation, error) {
	cfg := config.DefaultPongConfig()
	if err := config.ApplyPongVariant(&cfg, v); err != nil {
		return cfg, nil, err
	}
	s, err := sim.New(SetupFromConfig(cfg))
	if err != nil {
		return cfg, nil, err
	}
	return cfg, s, nil
}

// ConfigErr returns the error from the last config load, if any.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Config returns the config in use.
func (g *Game) Config() config.PongConfig {
	return g.cfg
}

// Sim exposes the running simulation, for tests and debugging.
func (g *Game) Sim() *sim.Simulation {
	return g.sim
}

// Step feeds dt of wall time to the simulation in steps of exactly
// timing.max_step seconds. Time short of a whole step is carried to the
// next call. While the game is over, only restart is read.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	var ev sim.Events

	if g.sim.State == sim.StateGameOver {
		if in.Has(core.ActionRestart) {
			ev = g.sim.Tick(sim.Input{Restart: true}, 0)
			g.keys = heldKeys{}
			g.pending = 0
		}
		return g.result(ev)
	}

	g.keys.press(in, g.cfg.Input.HoldTicks)
	input := g.keys.input()

	step := seconds(g.cfg.Timing.MaxStep)
	n, rest := fixedSteps(g.pending, dt, step, seconds(g.cfg.Timing.MaxLag))
	g.pending = rest
	for range n {
		ev = ev.Merge(g.sim.Tick(input, step.Seconds()))
		if g.sim.State != sim.StatePlaying {
			g.pending = 0
			break
		}
	}

	g.keys.release()
	return g.result(ev)
}

// fixedSteps adds elapsed to the pending time and returns how many steps
// of length step it holds and what is left over. Pending time is capped
// at maxLag so a stalled terminal does not fast-forward the rally.
func fixedSteps(pending, elapsed, step, maxLag time.Duration) (n int, rest time.Duration) {
	if step <= 0 {
		return 0, 0
	}
	if elapsed > 0 {
		pending += elapsed
	}
	if maxLag > 0 && pending > maxLag {
		pending = maxLag
	}
	n = int(pending / step)
	return n, pending - time.Duration(n)*step
}

func seconds(s float64) time.Duration {
	if math.IsNaN(s) || s <= 0 {
		return 0
	}
	return time.Duration(math.Round(s * float64(time.Second)))
}

func (g *Game) result(ev sim.Events) core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: toCoreEvents(ev),
	}
}

func toCoreEvents(ev sim.Events) []core.Event {
	var out []core.Event
	if ev.Restarted {
		out = append(out, core.EventRestart)
	}
	for range ev.WallBounces {
		out = append(out, core.EventWallBounce)
	}
	for range ev.PaddleHits {
		out = append(out, core.EventPaddleHit)
	}
	for range ev.Points {
		out = append(out, core.EventScore)
	}
	if ev.GameOver {
		out = append(out, core.EventGameOver)
	}
	return out
}

// State returns the score and, once the rally is over, the result.
func (g *Game) State() core.GameState {
	st := core.GameState{Score: g.sim.Game.Score}
	if g.sim.State == sim.StateGameOver {
		st.GameOver = true
		st.Won = g.sim.Game.Winner == sim.WinnerPlayer1
		st.Result = sim.ResultText(g.sim.Game, g.cfg.Display.ShowFinalScore)
	}
	return st
}

// SetupFromConfig converts a validated config to a simulation setup.
func SetupFromConfig(cfg config.PongConfig) sim.Setup {
	return sim.Setup{
		Field:         sim.Field{Width: cfg.Field.Width, Height: cfg.Field.Height},
		BallSize:      sim.Size{W: cfg.Ball.Size, H: cfg.Ball.Size},
		BallSpeed:     cfg.Ball.Speed,
		BallDirection: sim.V3(cfg.Ball.DirectionX, cfg.Ball.DirectionY, 0),
		PaddleSize: sim.Size{
			W: cfg.Paddles.Width,
			H: cfg.Field.Height * cfg.Paddles.HeightFactor,
		},
		PaddleInset:        cfg.Paddles.Inset,
		PaddleSpeed:        cfg.Paddles.Speed,
		BorderOffset:       cfg.Paddles.BorderOffset,
		LeftControl:        controlFor(cfg.Players.Left),
		RightControl:       controlFor(cfg.Players.Right),
		HitWidthMultiplier: cfg.Collision.HitWidthMultiplier,
		BallEdge:           cfg.Rules.BallEdge,
		ReleaseStops:       cfg.Rules.ReleaseStops,
		AI: sim.AIParams{
			Tolerance:      cfg.AI.Tolerance,
			MaxReflections: cfg.AI.MaxReflections,
		},
	}
}

func controlFor(name string) sim.Control {
	switch name {
	case config.ControllerHuman:
		return sim.Human()
	case config.ControllerTracking:
		return sim.AI(sim.StrategyDirectTracking)
	default:
		return sim.AI(sim.StrategyFullPrediction)
	}
}

func init() {
	for _, v := range config.Variants() {
		registry.Register(variantInfo[v], func() registry.Game {
			return New(v)
		})
	}
}
