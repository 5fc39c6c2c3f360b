// Package sim is the Pong simulation core: motion, paddle restriction,
// AI prediction, collisions and the game-over check. It knows nothing about
// terminals; the caller supplies input and elapsed time for every frame.
package sim

// Input is the human player's key state for one frame.
type Input struct {
	Up      bool
	Down    bool
	Restart bool
}

// Events summarises what happened during one Tick.
type Events struct {
	WallBounces int
	PaddleHits  int
	Points      int
	GameOver    bool
	Restarted   bool
}

// Merge adds the counts of o to e.
func (e Events) Merge(o Events) Events {
	return Events{
		WallBounces: e.WallBounces + o.WallBounces,
		PaddleHits:  e.PaddleHits + o.PaddleHits,
		Points:      e.Points + o.Points,
		GameOver:    e.GameOver || o.GameOver,
		Restarted:   e.Restarted || o.Restarted,
	}
}

// Simulation is the context every system reads and writes: the entities,
// the score and the current state.
type Simulation struct {
	setup  Setup
	World  World
	Game   Game
	State  GameState
	Frames uint64
}

// New validates the setup and starts a rally in the Playing state.
func New(setup Setup) (*Simulation, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{setup: setup}
	s.enterPlaying()
	return s, nil
}

// Setup returns the setup the simulation was built from.
func (s *Simulation) Setup() Setup {
	return s.setup
}

// enterPlaying rebuilds the world and clears the game.
func (s *Simulation) enterPlaying() {
	s.World = NewWorld(s.setup)
	s.Game.Reset()
	s.State = StatePlaying
	s.Frames = 0
}

// Restart leaves GameOver for a fresh Playing rally. It is a no-op while
// Playing and reports whether a restart happened.
func (s *Simulation) Restart() bool {
	if s.State != StateGameOver {
		return false
	}
	s.enterPlaying()
	return true
}

// Tick runs one frame. Systems run in a fixed order: decide, restrict,
// move, collide, evaluate. In GameOver only the restart input is read.
func (s *Simulation) Tick(in Input, dt float64) Events {
	if s.State == StateGameOver {
		if in.Restart && s.Restart() {
			return Events{Restarted: true}
		}
		return Events{}
	}
	if dt < 0 || isBad(dt) {
		dt = 0
	}

	w := &s.World
	for _, p := range w.Paddles() {
		if p.Control.IsAI() {
			DecideAI(p, w, s.setup.AI)
		} else {
			ApplyHumanInput(p, in, s.setup.ReleaseStops)
		}
	}

	RestrictPaddles(w)
	Integrate(w, dt)
	report := ResolveCollisions(w, s.setup.HitWidthMultiplier, &s.Game)
	over := EvaluateGameOver(w, s.setup.BallEdge, &s.Game, &s.State)
	s.Frames++

	ev := Events{
		PaddleHits: report.PaddleHits(),
		Points:     report.Points,
		GameOver:   over,
	}
	if report.WallBounce {
		ev.WallBounces = 1
	}
	return ev
}

// ApplyHumanInput sets a human paddle's direction from the key state.
// Up wins when both keys are held.
func ApplyHumanInput(p *Paddle, in Input, releaseStops bool) {
	switch {
	case in.Up:
		p.Direction.Y = 1
	case in.Down:
		p.Direction.Y = -1
	case releaseStops:
		p.Direction.Y = 0
	}
}
