package sim

import "github.com/vovakirdan/tui-pong/internal/core"

// PaddleLimits returns the lowest and highest centre Y the paddle may take.
func PaddleLimits(f Field, p Paddle) (lo, hi float64) {
	hi = f.HalfHeight() - p.Size.H*0.5 - p.BorderOffset
	return -hi, hi
}

// RestrictPaddles clamps both paddles into the field. The ball is never
// clamped; it bounces instead.
func RestrictPaddles(w *World) {
	for _, p := range w.Paddles() {
		lo, hi := PaddleLimits(w.Field, *p)
		p.Position.Y = core.ClampF(p.Position.Y, lo, hi)
	}
}
