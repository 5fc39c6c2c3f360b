package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings shared by the menu and the game.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
	Capture key.Binding
	Results key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r/space", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Capture: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Results: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results"),
		),
	}
}

// Action translates a key message to a game action. Quit is checked
// first so it always wins.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Select):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// menuHelp is the help.KeyMap shown under the variant list.
type menuHelp struct{ KeyMap }

func (h menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.Up, h.Down, h.Select, h.Results, h.Quit}
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
