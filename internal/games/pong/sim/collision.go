package sim

// SpeedUp is applied to the ball's speed multiplier on every paddle hit.
// Growth is uncapped.
const SpeedUp = 1.1

// Report lists what the collision pass changed this frame.
type Report struct {
	WallBounce bool
	Hits       []Side // paddles hit, in check order
	Points     int
}

// PaddleHits returns how many inverters touched the ball this frame.
// More than one means the ball overlapped both paddles at once.
func (r Report) PaddleHits() int {
	return len(r.Hits)
}

// Invert flips every component of dir whose mask component is 1.
func Invert(dir, mask Vec3) Vec3 {
	return Vec3{
		X: dir.X * flip(mask.X),
		Y: dir.Y * flip(mask.Y),
		Z: dir.Z * flip(mask.Z),
	}
}

func flip(m float64) float64 {
	if m == 1 {
		return -1
	}
	return 1
}

// ResolveCollisions bounces the ball off the walls and the paddles,
// updating the score in g. hitWidth scales the ball's collision width.
//
// Every overlapping inverter applies its effect; nothing prevents a ball
// overlapping both paddles from being flipped twice and scored twice.
func ResolveCollisions(w *World, hitWidth float64, g *Game) Report {
	var r Report
	b := &w.Ball

	limit := w.BallLimitY()
	if b.Position.Y < -limit || b.Position.Y > limit {
		b.Direction.Y *= -1
		r.WallBounce = true
	}

	ballBox := b.Box(hitWidth)
	for _, p := range w.Paddles() {
		if !p.Box().Overlaps(ballBox) {
			continue
		}

		b.Direction = Invert(b.Direction, p.Inverter.Axis)
		if p.Inverter.AwardsPoints {
			g.Score++
			r.Points++
		}
		b.SpeedMultiplier *= SpeedUp
		r.Hits = append(r.Hits, p.Side)
	}

	return r
}
