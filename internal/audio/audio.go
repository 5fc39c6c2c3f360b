// Package audio plays short square-wave cues for game events.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/vovakirdan/tui-pong/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
)

// note is one square-wave tone of a cue.
type note struct {
	freq     float64
	duration time.Duration
}

// cues maps events to the notes played for them.
var cues = map[core.Event][]note{
	core.EventPaddleHit:  {{880, 50 * time.Millisecond}},
	core.EventWallBounce: {{440, 30 * time.Millisecond}},
	core.EventScore:      {{1320, 25 * time.Millisecond}},
	// descending
	core.EventGameOver: {
		{660, 100 * time.Millisecond},
		{440, 100 * time.Millisecond},
		{330, 150 * time.Millisecond},
	},
	core.EventRestart: {
		{330, 60 * time.Millisecond},
		{660, 60 * time.Millisecond},
	},
}

// Player sends cues to the system speaker.
type Player struct {
	mu     sync.Mutex
	open   bool
	output func(...beep.Streamer)
}

// Open initializes the speaker. Only one Player should be open at a time.
func Open() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &Player{open: true, output: speaker.Play}, nil
}

// Play queues the cue for e. Events without a cue and calls after Close
// are ignored.
func (p *Player) Play(e core.Event) {
	s := Cue(e)
	if s == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}
	p.output(s)
}

// Close shuts the speaker down.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.open {
		return
	}
	p.open = false
	speaker.Close()
}

// Cue returns the streamer for e, or nil if e has no sound.
func Cue(e core.Event) beep.Streamer {
	notes, ok := cues[e]
	if !ok {
		return nil
	}
	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		streamers = append(streamers, squareWave(n.freq, n.duration))
	}
	if len(streamers) == 1 {
		return streamers[0]
	}
	return beep.Seq(streamers...)
}

// squareWave generates a square wave tone for the given duration.
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	remaining := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, i > 0
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			remaining--
		}
		return len(samples), true
	})
}
