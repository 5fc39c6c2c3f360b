package tui

import (
	"testing"
	"time"
)

func TestFrameClock(t *testing.T) {
	var c frameClock
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if got := c.elapsed(t0); got != 0 {
		t.Errorf("first tick = %v, want 0", got)
	}
	if got := c.elapsed(t0.Add(16 * time.Millisecond)); got != 16*time.Millisecond {
		t.Errorf("second tick = %v, want 16ms", got)
	}
	if got := c.elapsed(t0); got != 0 {
		t.Errorf("backwards tick = %v, want 0", got)
	}

	c.reset()
	if got := c.elapsed(t0.Add(time.Hour)); got != 0 {
		t.Errorf("tick after reset = %v, want 0", got)
	}
}

func TestTickCmdOwner(t *testing.T) {
	a, b := nextOwner(), nextOwner()
	if a == b {
		t.Fatal("owners should be unique")
	}
	msg, ok := tickCmd(1000, a)().(TickMsg)
	if !ok {
		t.Fatal("tick command did not return a TickMsg")
	}
	if msg.owner != a {
		t.Errorf("owner = %d, want %d", msg.owner, a)
	}
}
