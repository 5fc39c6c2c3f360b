package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// stubGame records what the model passes to it.
type stubGame struct {
	resets  int
	steps   []time.Duration
	inputs  []core.InputFrame
	events  []core.Event
	state   core.GameState
	cfgErr  error
	renders int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) ConfigErr() error { return g.cfgErr }

func (g *stubGame) Render(s *core.Screen) {
	g.renders++
	s.DrawText(0, 0, "stub")
}

func (g *stubGame) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.steps = append(g.steps, dt)
	g.inputs = append(g.inputs, frame)
	ev := g.events
	g.events = nil
	return core.StepResult{State: g.state, Events: ev}
}

type recordingSounder struct{ played []core.Event }

func (r *recordingSounder) Play(e core.Event) { r.played = append(r.played, e) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(m GameModel, at time.Time) TickMsg {
	return TickMsg{Time: at, owner: m.owner}
}

func TestGameModelTickElapsed(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, testConfig(), Options{})
	if m.Init() == nil {
		t.Fatal("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1", g.resets)
	}

	t0 := time.Now()
	m, cmd := update(t, m, tick(m, t0))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = update(t, m, tick(m, t0.Add(20*time.Millisecond)))

	want := []time.Duration{0, 20 * time.Millisecond}
	if len(g.steps) != len(want) {
		t.Fatalf("steps = %v, want %v", g.steps, want)
	}
	for i := range want {
		if g.steps[i] != want[i] {
			t.Errorf("step %d dt = %v, want %v", i, g.steps[i], want[i])
		}
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, testConfig(), Options{})
	m.Init()

	m, cmd := update(t, m, TickMsg{Time: time.Now(), owner: m.owner + 1})
	if cmd != nil || len(g.steps) != 0 {
		t.Errorf("foreign tick stepped the game: steps=%d", len(g.steps))
	}
}

func TestGameModelInputCleared(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, testConfig(), Options{})
	m.Init()
	t0 := time.Now()

	m, _ = update(t, m, runeKey('w'))
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, tick(m, t0))
	m, _ = update(t, m, tick(m, t0.Add(time.Millisecond)))

	if !g.inputs[0].Has(core.ActionUp) || !g.inputs[0].Has(core.ActionRestart) {
		t.Errorf("first frame missing actions: %v", g.inputs[0].Actions)
	}
	if len(g.inputs[1].Actions) != 0 {
		t.Errorf("second frame should be empty: %v", g.inputs[1].Actions)
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	tests := []struct {
		name       string
		standalone bool
		msg        tea.KeyMsg
		wantQuit   bool
		wantBack   bool
	}{
		{"quit", false, runeKey('q'), true, false},
		{"ctrl+c standalone", true, tea.KeyMsg{Type: tea.KeyCtrlC}, true, false},
		{"back in session", false, tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{"back standalone quits", true, runeKey('b'), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &stubGame{}
			m := NewGameModel(g, testConfig(), Options{Standalone: tt.standalone})
			m, cmd := update(t, m, tt.msg)

			if m.IsQuitting() != tt.wantQuit {
				t.Errorf("IsQuitting = %v, want %v", m.IsQuitting(), tt.wantQuit)
			}
			if m.BackToMenu() != tt.wantBack {
				t.Errorf("BackToMenu = %v, want %v", m.BackToMenu(), tt.wantBack)
			}
			if tt.wantQuit {
				if cmd == nil {
					t.Fatal("quit should return a command")
				}
				if _, ok := cmd().(tea.QuitMsg); !ok {
					t.Error("quit command should produce tea.QuitMsg")
				}
			}
		})
	}
}

func TestGameModelEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	sounds := &recordingSounder{}

	g := &stubGame{
		events: []core.Event{core.EventPaddleHit, core.EventGameOver},
		state:  core.GameState{Score: 4, GameOver: true, Result: "You lost! Score: 4"},
	}
	m := NewGameModel(g, testConfig(), Options{Logger: logger, Sounder: sounds})
	m.Init()
	m, _ = update(t, m, tick(m, time.Now()))

	if len(sounds.played) != 2 || sounds.played[1] != core.EventGameOver {
		t.Errorf("played = %v", sounds.played)
	}
	if !m.State().GameOver {
		t.Error("model should track game over state")
	}
	res := m.Results()
	if len(res) != 1 || res[0].Score != 4 || res[0].Won || res[0].GameID != "stub" {
		t.Errorf("results = %+v", res)
	}
	out := buf.String()
	for _, want := range []string{"game started", "game over", "score=4"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestGameModelLogsConfigFallback(t *testing.T) {
	var buf bytes.Buffer
	g := &stubGame{cfgErr: errors.New("bad yaml")}
	m := NewGameModel(g, testConfig(), Options{Logger: log.New(&buf)})
	m.Init()

	if !strings.Contains(buf.String(), "bad yaml") {
		t.Errorf("config error not logged:\n%s", buf.String())
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, testConfig(), Options{})
	m.Init()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("resize reset the game: resets = %d", g.resets)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, want 30", lines)
	}
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &stubGame{}
	m := NewGameModel(g, testConfig(), Options{ScreenshotDir: dir})
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "stub_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, err = %v", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "stub") {
		t.Errorf("screenshot = %q", data)
	}
}
