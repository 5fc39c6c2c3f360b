package sim

// Vec3 is a float64 3D vector. Z is carried for parity with the collision
// axis masks but never moves anything on screen.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for building a vector.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Size is a width x height extent centred on an entity position.
type Size struct {
	W, H float64
}

// Box is an axis-aligned bounding box described by its centre and extent.
type Box struct {
	Center Vec3
	Size   Size
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	dx := b.Center.X - o.Center.X
	if dx < 0 {
		dx = -dx
	}
	dy := b.Center.Y - o.Center.Y
	if dy < 0 {
		dy = -dy
	}
	return dx < (b.Size.W+o.Size.W)/2 && dy < (b.Size.H+o.Size.H)/2
}
