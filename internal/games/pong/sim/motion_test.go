package sim

import "testing"

func TestIntegrateMovesByDirectionSpeedMultiplierAndDT(t *testing.T) {
	w := NewWorld(DefaultSetup())
	w.Ball.Position = V3(1, 2, 0)
	w.Ball.Direction = V3(-1, 1, 0)
	w.Ball.SpeedMultiplier = 1.21
	w.Left.Direction.Y = 1
	w.Right.Direction.Y = -1

	dt := 1.0 / 60.0
	ballStep := w.Ball.Speed * w.Ball.SpeedMultiplier * dt
	paddleStep := w.Left.Speed * 1.0 * dt
	wantBall := V3(1+(-1*ballStep), 2+(1*ballStep), 0)
	wantLeftY := w.Left.Position.Y + paddleStep
	wantRightY := w.Right.Position.Y + (-1 * paddleStep)
	wantLeftX := w.Left.Position.X

	Integrate(&w, dt)

	if w.Ball.Position != wantBall {
		t.Errorf("ball position = %v, expected %v", w.Ball.Position, wantBall)
	}
	if w.Left.Position.Y != wantLeftY {
		t.Errorf("left paddle y = %f, expected %f", w.Left.Position.Y, wantLeftY)
	}
	if w.Right.Position.Y != wantRightY {
		t.Errorf("right paddle y = %f, expected %f", w.Right.Position.Y, wantRightY)
	}
	if w.Left.Position.X != wantLeftX {
		t.Errorf("paddle x should not move, got %f", w.Left.Position.X)
	}
}

func TestIntegrateZeroDT(t *testing.T) {
	w := NewWorld(DefaultSetup())
	w.Ball.Position = V3(10, -20, 0)
	w.Left.Direction.Y = 1

	before := w
	Integrate(&w, 0)

	if w.Ball.Position != before.Ball.Position {
		t.Errorf("ball moved with dt=0: %v -> %v", before.Ball.Position, w.Ball.Position)
	}
	if w.Left.Position != before.Left.Position {
		t.Errorf("paddle moved with dt=0: %v -> %v", before.Left.Position, w.Left.Position)
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name                  string
		pos, dir              Vec3
		speed, multiplier, dt float64
		expected              Vec3
	}{
		{"still", V3(5, 5, 0), V3(0, 0, 0), 100, 1, 1, V3(5, 5, 0)},
		{"right", V3(0, 0, 0), V3(1, 0, 0), 100, 1, 0.5, V3(50, 0, 0)},
		{"diagonal with multiplier", V3(0, 0, 0), V3(-1, 1, 0), 100, 2, 0.25, V3(-50, 50, 0)},
		{"z carried", V3(0, 0, 1), V3(0, 0, 1), 10, 1, 1, V3(0, 0, 11)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Advance(tc.pos, tc.dir, tc.speed, tc.multiplier, tc.dt)
			if got != tc.expected {
				t.Errorf("Advance() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
