package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong/sim"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '┊'
)

// Smallest screen the field can be drawn on.
const (
	MinScreenW = 20
	MinScreenH = 8
)

const restartHint = "R/Space: restart   B: menu   Q: quit"

// viewport maps field coordinates (origin at the centre, Y up) onto the
// cells inside the field border (origin top-left, Y down).
type viewport struct {
	x0, y0 int // first interior cell
	w, h   int // interior size in cells
	field  sim.Field
}

// newViewport lays the field out below the HUD row, inside a border.
func newViewport(screenW, screenH int, f sim.Field) viewport {
	return viewport{x0: 1, y0: 2, w: screenW - 2, h: screenH - 3, field: f}
}

func (v viewport) border() core.Rect {
	return core.NewRect(v.x0-1, v.y0-1, v.w+2, v.h+2)
}

func (v viewport) col(x float64) int {
	c := int(math.Floor((x + v.field.HalfWidth()) / v.field.Width * float64(v.w)))
	return v.x0 + core.Clamp(c, 0, v.w-1)
}

func (v viewport) row(y float64) int {
	r := int(math.Floor((v.field.HalfHeight() - y) / v.field.Height * float64(v.h)))
	return v.y0 + core.Clamp(r, 0, v.h-1)
}

// Render draws the HUD, the field and, once the rally is over, the result.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	s := g.sim
	w := &s.World
	vp := newViewport(dst.Width(), dst.Height(), w.Field)

	g.drawHUD(dst)
	dst.DrawBox(vp.border(), core.ColorGray)

	if g.cfg.Display.CenterLine {
		cx := vp.col(0)
		for y := vp.y0; y < vp.y0+vp.h; y += 2 {
			dst.SetColored(cx, y, NetChar, core.ColorGray)
		}
	}

	drawPaddle(dst, vp, &w.Left, core.ColorCyan)
	drawPaddle(dst, vp, &w.Right, core.ColorMagenta)
	dst.SetColored(vp.col(w.Ball.Position.X), vp.row(w.Ball.Position.Y), BallChar, core.ColorYellow)

	if s.State == sim.StateGameOver {
		color := core.ColorRed
		if s.Game.Winner == sim.WinnerPlayer1 {
			color = core.ColorGreen
		}
		drawMessage(dst, sim.ResultText(s.Game, g.cfg.Display.ShowFinalScore), restartHint, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, sim.ScoreText(g.sim.Game.Score), core.ColorWhite)

	title := g.Title()
	dst.DrawTextColored(dst.Width()-len([]rune(title))-1, 0, title, core.ColorGray)
}

func drawPaddle(dst *core.Screen, vp viewport, p *sim.Paddle, c core.Color) {
	x := vp.col(p.Position.X)
	top := vp.row(p.Position.Y + p.Size.H/2)
	bottom := vp.row(p.Position.Y - p.Size.H/2)
	dst.DrawVLine(x, top, bottom-top+1, PaddleChar, c)
}

// drawMessage draws a bordered box in the centre of the screen.
func drawMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	titleW, subW := len([]rune(title)), len([]rune(subtitle))

	boxW := min(max(titleW, subW)+4, dst.Width())
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextColored(box.X+(boxW-titleW)/2, box.Y+1, title, c)
	dst.DrawTextColored(box.X+(boxW-subW)/2, box.Y+3, subtitle, core.ColorGray)
}
