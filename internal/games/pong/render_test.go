package pong

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestRenderLayout(t *testing.T) {
	g := newGame(t, config.VariantPredictive)
	dst := core.NewScreen(80, 24)

	g.Render(dst)

	if row := dst.Row(0); !strings.HasPrefix(row, " Score: 0") || !strings.Contains(row, g.Title()) {
		t.Errorf("HUD row = %q", row)
	}
	if dst.Get(0, 1) != '┌' || dst.Get(79, 23) != '┘' {
		t.Error("field border missing")
	}

	// Ball at the centre, paddles at x=-370 and x=370 on a 78x21 interior.
	if c := dst.GetCell(40, 12); c.Rune != BallChar || c.Color != core.ColorYellow {
		t.Errorf("ball cell = %+v", c)
	}
	if dst.Get(3, 12) != PaddleChar {
		t.Errorf("left paddle missing, column 3 = %q", dst.Get(3, 12))
	}
	if dst.Get(76, 12) != PaddleChar {
		t.Errorf("right paddle missing, column 76 = %q", dst.Get(76, 12))
	}
	if dst.Get(3, 8) == PaddleChar || dst.Get(3, 16) == PaddleChar {
		t.Error("paddle drawn taller than its size")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newGame(t, config.VariantClassic)
	g.Sim().World.Ball.Position.X = -1000
	g.Step(core.NewInputFrame(), frame)

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	out := dst.String()
	if !strings.Contains(out, "You lose!") {
		t.Errorf("result missing from screen:\n%s", out)
	}
	if !strings.Contains(out, restartHint) {
		t.Errorf("restart hint missing from screen:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, config.VariantPredictive)
	dst := core.NewScreen(10, 4)

	g.Render(dst)

	if !strings.Contains(dst.String(), "too") {
		t.Errorf("expected a size warning, got %q", dst.String())
	}
}

func TestViewportMapsCorners(t *testing.T) {
	g := newGame(t, config.VariantPredictive)
	vp := newViewport(80, 24, g.Sim().World.Field)

	if vp.col(-400) != 1 || vp.col(400) != 78 {
		t.Errorf("columns = %d..%d, expected 1..78", vp.col(-400), vp.col(400))
	}
	if vp.row(300) != 2 || vp.row(-300) != 22 {
		t.Errorf("rows = %d..%d, expected 2..22", vp.row(300), vp.row(-300))
	}
}
