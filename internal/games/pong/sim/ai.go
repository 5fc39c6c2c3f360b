package sim

import "math"

// minHorizontal is the smallest |direction.X| for which the ball's path
// still has a usable slope.
const minHorizontal = 1e-6

// reflectionCap bounds the tracing loop regardless of geometry.
const reflectionCap = 1024

// Prediction is where the ball is expected to cross a paddle plane.
type Prediction struct {
	Point       Vec3 // only Y is used by the controller
	Reflections int  // wall bounces traced on the way
	OK          bool // false when no prediction was possible
}

// ReflectionBound returns the most wall bounces a ball travelling along dir
// can make between the two paddle planes: gap*|k|/span rounded down, plus 2.
func ReflectionBound(dir Vec3, upper, lower, leftX, rightX float64) int {
	span := upper - lower
	if span <= 0 || math.Abs(dir.X) < minHorizontal {
		return 0
	}
	k := math.Abs(dir.Y / dir.X)
	n := math.Abs(rightX-leftX) * k / span
	if math.IsNaN(n) || n > reflectionCap {
		return reflectionCap
	}
	return int(n) + 2
}

// PredictHitpoint traces the ball from pos along dir, reflecting off the
// horizontal lines y=upper and y=lower, until it reaches the next paddle
// plane (x=leftX when moving left, x=rightX when moving right).
//
// The loop never runs more than min(ReflectionBound, maxReflections) times;
// maxReflections <= 0 means only the geometric bound applies.
func PredictHitpoint(pos, dir Vec3, upper, lower, leftX, rightX float64, maxReflections int) Prediction {
	if math.Abs(dir.X) < minHorizontal || isBad(pos.X) || isBad(pos.Y) {
		return Prediction{}
	}

	bound := ReflectionBound(dir, upper, lower, leftX, rightX)
	if maxReflections > 0 && maxReflections < bound {
		bound = maxReflections
	}

	reflections := 0
	for {
		k := dir.Y / dir.X
		d := pos.Y - k*pos.X

		if reflections < bound {
			upperX := (upper - d) / k
			lowerX := (lower - d) / k

			if dir.Y > 0 && upperX > leftX && upperX < rightX {
				pos = V3(upperX, upper, 0)
				dir = V3(dir.X, -dir.Y, 0)
				reflections++
				continue
			}
			if dir.Y < 0 && lowerX > leftX && lowerX < rightX {
				pos = V3(lowerX, lower, 0)
				dir = V3(dir.X, -dir.Y, 0)
				reflections++
				continue
			}
		}

		x := leftX
		if dir.X > 0 {
			x = rightX
		}
		y := k*x + d
		if isBad(y) {
			return Prediction{Reflections: reflections}
		}
		if lower <= upper {
			y = math.Max(lower, math.Min(upper, y))
		}
		return Prediction{Point: V3(x, y, 0), Reflections: reflections, OK: true}
	}
}

func isBad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// AITarget returns the height the paddle should steer to and the dead
// zone around it.
func AITarget(p *Paddle, w *World, params AIParams) (target, tolerance float64) {
	ball := w.Ball
	side := p.Side.Sign()

	switch p.Control.Strategy {
	case StrategyDirectTracking:
		// Only chase once the ball is on our half and coming at us.
		if side*ball.Position.X <= 0 || side*ball.Direction.X < 0 {
			return 0, params.Tolerance
		}
		return ball.Position.Y, 0

	default:
		if side*ball.Direction.X < 0 {
			return 0, params.Tolerance
		}
		limit := w.BallLimitY()
		pred := PredictHitpoint(
			ball.Position,
			ball.Direction,
			limit,
			-limit,
			w.Left.Position.X,
			w.Right.Position.X,
			params.MaxReflections,
		)
		if !pred.OK {
			return 0, params.Tolerance
		}
		return pred.Point.Y, params.Tolerance
	}
}

// Steer sets the paddle's vertical direction towards target.
func Steer(p *Paddle, target, tolerance float64) {
	switch {
	case p.Position.Y < target-tolerance:
		p.Direction.Y = 1
	case p.Position.Y > target+tolerance:
		p.Direction.Y = -1
	default:
		p.Direction.Y = 0
	}
}

// DecideAI steers an AI paddle. Human paddles are left alone.
func DecideAI(p *Paddle, w *World, params AIParams) {
	if !p.Control.IsAI() {
		return
	}
	target, tolerance := AITarget(p, w, params)
	Steer(p, target, tolerance)
}
