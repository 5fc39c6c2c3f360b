package core

// RuntimeConfig is what the platform tells a game when it is (re)started.
type RuntimeConfig struct {
	ScreenW  int    // terminal width in cells
	ScreenH  int    // terminal height in cells
	TickRate int    // platform frames per second (default 60)
	Config   string // optional path to a pong.yaml override
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int    // current score
	GameOver bool   // the rally has ended
	Won      bool   // the human side won the last rally
	Result   string // end-of-game message, empty while playing
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State  GameState
	Events []Event // what happened during the step, in order
}

// Has reports whether the step produced an event of the given kind.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
