package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong/sim"
)

// heldKeys turns key presses into held keys. Terminals send repeated
// presses while a key is down but never a release, so a direction stays
// held for a number of steps after its last press.
type heldKeys struct {
	up   int
	down int
}

func (k *heldKeys) press(in core.InputFrame, holdTicks int) {
	hold := max(holdTicks, 1)
	if in.Has(core.ActionUp) {
		k.up, k.down = hold, 0
	}
	if in.Has(core.ActionDown) {
		k.down, k.up = hold, 0
	}
}

func (k *heldKeys) input() sim.Input {
	return sim.Input{Up: k.up > 0, Down: k.down > 0}
}

// release counts down one step.
func (k *heldKeys) release() {
	if k.up > 0 {
		k.up--
	}
	if k.down > 0 {
		k.down--
	}
}
