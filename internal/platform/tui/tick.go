// Package tui runs Pong in a terminal with Bubble Tea: it maps keys to
// actions, measures frame time, renders the game screen and serves the
// same flow over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent at the frame rate and carries the time it fired.
// Ticks scheduled by another game model are ignored.
type TickMsg struct {
	Time  time.Time
	owner uint64
}

var lastOwner atomic.Uint64

func nextOwner() uint64 {
	return lastOwner.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, owner uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, owner: owner}
	})
}

// frameClock measures wall time between ticks. The first tick after a
// reset reports zero.
type frameClock struct {
	last time.Time
}

func (c *frameClock) elapsed(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}

func (c *frameClock) reset() {
	c.last = time.Time{}
}
