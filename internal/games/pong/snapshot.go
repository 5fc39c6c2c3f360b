package pong

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-pong/internal/games/pong/sim"
)

// Snapshot is a copy of everything that determines the next frame.
type Snapshot struct {
	Frames     uint64
	State      sim.GameState
	Score      int
	Winner     sim.Winner
	Ball       sim.Ball
	Left       sim.Paddle
	Right      sim.Paddle
	HeldUp     int
	HeldDown   int
	Variant    string
	FieldWidth float64
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	s := g.sim
	return Snapshot{
		Frames:     s.Frames,
		State:      s.State,
		Score:      s.Game.Score,
		Winner:     s.Game.Winner,
		Ball:       s.World.Ball,
		Left:       s.World.Left,
		Right:      s.World.Right,
		HeldUp:     g.keys.up,
		HeldDown:   g.keys.down,
		Variant:    g.ID(),
		FieldWidth: s.World.Field.Width,
	}
}

// Hash returns an FNV-1a hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so equal hashes mean
// bit-identical state.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF := func(f float64) { put(math.Float64bits(f)) }
	putVec := func(v sim.Vec3) {
		putF(v.X)
		putF(v.Y)
		putF(v.Z)
	}

	put(snap.Frames)
	put(uint64(snap.State))    //#nosec G115 -- hash computation
	put(uint64(snap.Score))    //#nosec G115 -- hash computation
	put(uint64(snap.Winner))   //#nosec G115 -- hash computation
	put(uint64(snap.HeldUp))   //#nosec G115 -- hash computation
	put(uint64(snap.HeldDown)) //#nosec G115 -- hash computation
	putF(snap.FieldWidth)

	putVec(snap.Ball.Position)
	putVec(snap.Ball.Direction)
	putF(snap.Ball.SpeedMultiplier)
	for _, p := range []sim.Paddle{snap.Left, snap.Right} {
		putVec(p.Position)
		putVec(p.Direction)
	}
	_, _ = h.Write([]byte(snap.Variant))

	return h.Sum64()
}
