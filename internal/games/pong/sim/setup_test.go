package sim

import "testing"

func TestDefaultSetupIsValid(t *testing.T) {
	if err := DefaultSetup().Validate(); err != nil {
		t.Errorf("DefaultSetup().Validate() = %v", err)
	}
}

func TestSetupValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Setup)
	}{
		{"zero field", func(s *Setup) { s.Field.Width = 0 }},
		{"negative ball", func(s *Setup) { s.BallSize.H = -1 }},
		{"zero speed", func(s *Setup) { s.BallSpeed = 0 }},
		{"non-unit direction", func(s *Setup) { s.BallDirection = V3(-0.5, 1, 0) }},
		{"vertical direction", func(s *Setup) { s.BallDirection = V3(0, 1, 0) }},
		{"paddle too tall", func(s *Setup) { s.PaddleSize.H = 700 }},
		{"offset too big", func(s *Setup) { s.BorderOffset = 250 }},
		{"negative offset", func(s *Setup) { s.BorderOffset = -1 }},
		{"inset past centre", func(s *Setup) { s.PaddleInset = 400 }},
		{"negative paddle speed", func(s *Setup) { s.PaddleSpeed = -1 }},
		{"zero hit width", func(s *Setup) { s.HitWidthMultiplier = 0 }},
		{"negative tolerance", func(s *Setup) { s.AI.Tolerance = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultSetup()
			tc.modify(&s)
			if err := s.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPaddleLimits(t *testing.T) {
	f := Field{Width: 800, Height: 600}
	p := Paddle{Size: Size{W: 10, H: 120}, BorderOffset: 20}

	lo, hi := PaddleLimits(f, p)
	if lo != -220 || hi != 220 {
		t.Errorf("PaddleLimits() = (%f, %f), expected (-220, 220)", lo, hi)
	}
}
