package sim

// Advance returns pos moved along dir for dt seconds.
func Advance(pos, dir Vec3, speed, multiplier, dt float64) Vec3 {
	return pos.Add(dir.Scale(speed * multiplier * dt))
}

// Integrate moves every entity by direction x speed x multiplier x dt.
// Paddles have no multiplier and move at their base speed.
func Integrate(w *World, dt float64) {
	b := &w.Ball
	b.Position = Advance(b.Position, b.Direction, b.Speed, b.SpeedMultiplier, dt)

	for _, p := range w.Paddles() {
		p.Position = Advance(p.Position, p.Direction, p.Speed, 1.0, dt)
	}
}
