package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-pong/internal/games/pong"
)

// isolate keeps user and working-directory config files out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
}

func updateMenu(t *testing.T, m MenuModel, msgs ...tea.Msg) MenuModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(MenuModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(testConfig())
	view := m.View()

	for _, want := range []string{"P O N G", "Pong: Classic", "Pong: Predictive", "Pong: Demo", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name string
		keys []tea.Msg
		want string
	}{
		{"first", []tea.Msg{enter}, "classic"},
		{"second", []tea.Msg{down, enter}, "predictive"},
		{"clamped at bottom", []tea.Msg{down, down, down, down, enter}, "demo"},
		{"clamped at top", []tea.Msg{up, up, down, up, enter}, "classic"},
		{"vim keys", []tea.Msg{runeKey('j'), runeKey('j'), runeKey('k'), enter}, "predictive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := updateMenu(t, NewMenuModel(testConfig()), tt.keys...)
			sel := m.Selected()
			if sel == nil {
				t.Fatal("nothing selected")
			}
			if sel.ID != tt.want {
				t.Errorf("selected %q, want %q", sel.ID, tt.want)
			}
		})
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(testConfig())
	next, cmd := m.Update(runeKey('q'))
	if !next.(MenuModel).IsQuitting() {
		t.Error("menu should be quitting")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if next.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestMenuResize(t *testing.T) {
	m := updateMenu(t, NewMenuModel(testConfig()), tea.WindowSizeMsg{Width: 90, Height: 30})
	if cfg := m.Config(); cfg.ScreenW != 90 || cfg.ScreenH != 30 {
		t.Errorf("config = %+v, want 90x30", cfg)
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, want 30", lines)
	}
}
