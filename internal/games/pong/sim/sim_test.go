package sim

import (
	"math"
	"testing"
)

func classicSetup() Setup {
	s := DefaultSetup()
	s.RightControl = AI(StrategyDirectTracking)
	s.PaddleSpeed = 700
	s.HitWidthMultiplier = 1
	s.BallEdge = true
	s.ReleaseStops = true
	return s
}

func demoSetup() Setup {
	s := DefaultSetup()
	s.LeftControl = AI(StrategyFullPrediction)
	return s
}

func mustNew(t *testing.T, setup Setup) *Simulation {
	t.Helper()
	s, err := New(setup)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestNewStartsPlaying(t *testing.T) {
	s := mustNew(t, DefaultSetup())

	if s.Game.Score != 0 {
		t.Errorf("score = %d, expected 0", s.Game.Score)
	}
	if s.Game.Winner != WinnerNone {
		t.Errorf("winner = %v, expected none", s.Game.Winner)
	}
	if s.State != StatePlaying {
		t.Errorf("state = %v, expected playing", s.State)
	}
	if s.World.Ball.Position != V3(0, 0, 0) {
		t.Errorf("ball at %v, expected origin", s.World.Ball.Position)
	}
	if s.World.Ball.SpeedMultiplier != 1 {
		t.Errorf("multiplier = %f, expected 1", s.World.Ball.SpeedMultiplier)
	}
	if s.World.Left.Position.X != -370 || s.World.Right.Position.X != 370 {
		t.Errorf("paddles at %f and %f, expected -370 and 370", s.World.Left.Position.X, s.World.Right.Position.X)
	}
	if !s.World.Left.Inverter.AwardsPoints || s.World.Right.Inverter.AwardsPoints {
		t.Error("only the left paddle should award points")
	}
}

func TestNewRejectsInvalidSetup(t *testing.T) {
	setup := DefaultSetup()
	setup.BallSpeed = 0

	if _, err := New(setup); err == nil {
		t.Error("expected an error for a zero ball speed")
	}
}

func TestRestartWhilePlayingIsNoop(t *testing.T) {
	s := mustNew(t, DefaultSetup())
	s.Tick(Input{}, 1.0/60.0)
	before := s.World

	if s.Restart() {
		t.Error("Restart() reported a restart while playing")
	}
	if s.World != before {
		t.Error("Restart() changed the world while playing")
	}
}

func TestRestartFromGameOver(t *testing.T) {
	s := mustNew(t, DefaultSetup())
	s.World.Ball.Position = V3(-1000, 0, 0)
	s.Game.Score = 7

	if ev := s.Tick(Input{}, 0); !ev.GameOver {
		t.Fatal("expected game over")
	}

	// Frozen until restart.
	frozen := s.World
	if ev := s.Tick(Input{Up: true}, 1.0/60.0); ev != (Events{}) {
		t.Errorf("events while game over: %+v", ev)
	}
	if s.World != frozen {
		t.Error("world moved during game over")
	}

	ev := s.Tick(Input{Restart: true}, 1.0/60.0)
	if !ev.Restarted {
		t.Fatal("expected a restart event")
	}
	if s.State != StatePlaying || s.Game.Score != 0 || s.Game.Winner != WinnerNone {
		t.Errorf("after restart: state=%v score=%d winner=%v", s.State, s.Game.Score, s.Game.Winner)
	}
	if s.World != NewWorld(s.Setup()) {
		t.Error("world was not rebuilt on restart")
	}
}

func TestTickBouncesOffTopWall(t *testing.T) {
	s := mustNew(t, DefaultSetup())
	s.World.Ball.Position = V3(0, 294, 0)
	s.World.Ball.Direction = V3(1, 1, 0)

	ev := s.Tick(Input{}, 1.0/60.0)

	if ev.WallBounces != 1 {
		t.Errorf("wall bounces = %d, expected 1", ev.WallBounces)
	}
	if s.World.Ball.Direction != V3(1, -1, 0) {
		t.Errorf("direction = %v, expected (1, -1, 0)", s.World.Ball.Direction)
	}
	if s.Game.Score != 0 {
		t.Errorf("score = %d, expected 0", s.Game.Score)
	}
}

func TestTickIgnoresBadDT(t *testing.T) {
	for _, dt := range []float64{-1, math.NaN(), math.Inf(1)} {
		s := mustNew(t, DefaultSetup())
		s.Tick(Input{}, dt)
		if s.World.Ball.Position != V3(0, 0, 0) {
			t.Errorf("dt=%v moved the ball to %v", dt, s.World.Ball.Position)
		}
	}
}

func TestTickRestrictsHumanPaddle(t *testing.T) {
	s := mustNew(t, DefaultSetup())
	_, hi := PaddleLimits(s.World.Field, s.World.Left)

	for i := 0; i < 120; i++ {
		s.Tick(Input{Up: true}, 1.0/60.0)
		if s.State != StatePlaying {
			break
		}
	}

	// Restriction runs before movement, so one step of overshoot is allowed.
	step := s.World.Left.Speed / 60.0
	if y := s.World.Left.Position.Y; y > hi+step {
		t.Errorf("paddle y = %f, expected at most %f", y, hi+step)
	}
}

func TestApplyHumanInput(t *testing.T) {
	tests := []struct {
		name         string
		start        float64
		in           Input
		releaseStops bool
		expected     float64
	}{
		{"up", 0, Input{Up: true}, false, 1},
		{"down", 0, Input{Down: true}, false, -1},
		{"both keys, up wins", 0, Input{Up: true, Down: true}, false, 1},
		{"release keeps direction", -1, Input{}, false, -1},
		{"release stops", -1, Input{}, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Paddle{Direction: V3(0, tc.start, 0)}
			ApplyHumanInput(&p, tc.in, tc.releaseStops)
			if p.Direction.Y != tc.expected {
				t.Errorf("direction = %f, expected %f", p.Direction.Y, tc.expected)
			}
		})
	}
}

func TestIdleHumanLosesClassic(t *testing.T) {
	s := mustNew(t, classicSetup())

	for i := 0; i < 600 && s.State == StatePlaying; i++ {
		s.Tick(Input{}, 1.0/120.0)
	}

	if s.State != StateGameOver {
		t.Fatal("expected the rally to end")
	}
	if s.Game.Winner != WinnerPlayer2 {
		t.Errorf("winner = %v, expected player2", s.Game.Winner)
	}
	if got := ResultText(s.Game, false); got != "You lose!" {
		t.Errorf("ResultText() = %q, expected %q", got, "You lose!")
	}
}

func TestDemoAIReturnsTheBall(t *testing.T) {
	s := mustNew(t, demoSetup())

	var total Events
	for i := 0; i < 480 && total.Points == 0 && s.State == StatePlaying; i++ {
		total = total.Merge(s.Tick(Input{}, 1.0/120.0))
	}

	if total.Points == 0 {
		t.Fatalf("left AI never returned the ball, state=%v ball=%v", s.State, s.World.Ball.Position)
	}
	if s.Game.Score != total.Points {
		t.Errorf("score = %d, events counted %d", s.Game.Score, total.Points)
	}
	if s.World.Ball.SpeedMultiplier <= 1 {
		t.Errorf("multiplier = %f, expected growth after a hit", s.World.Ball.SpeedMultiplier)
	}
}

func TestTickIsDeterministic(t *testing.T) {
	a := mustNew(t, demoSetup())
	b := mustNew(t, demoSetup())

	for i := 0; i < 1000; i++ {
		a.Tick(Input{}, 1.0/90.0)
		b.Tick(Input{}, 1.0/90.0)
	}

	if a.World != b.World || a.Game != b.Game || a.State != b.State {
		t.Error("identical simulations diverged")
	}
}

func TestEventsMerge(t *testing.T) {
	a := Events{WallBounces: 1, Points: 2}
	b := Events{PaddleHits: 1, Points: 1, GameOver: true}

	got := a.Merge(b)
	expected := Events{WallBounces: 1, PaddleHits: 1, Points: 3, GameOver: true}
	if got != expected {
		t.Errorf("Merge() = %+v, expected %+v", got, expected)
	}
}
