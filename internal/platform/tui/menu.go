package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDescStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	menuBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
)

// MenuModel lets the player pick a game variant.
type MenuModel struct {
	items        []registry.GameInfo
	cursor       int
	width        int
	height       int
	config       core.RuntimeConfig
	keys         KeyMap
	help         help.Model
	quitting     bool
	wantsResults bool
	selected     *registry.GameInfo
}

// NewMenuModel creates a menu listing every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Results) {
		m.wantsResults = true
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case core.ActionConfirm:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("P O N G"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("> " + item.Title))
		} else {
			b.WriteString(menuItemStyle.Render("  " + item.Title))
		}
		if item.Description != "" {
			b.WriteString("\n")
			b.WriteString(menuDescStyle.Render("    " + item.Description))
		}
	}
	if len(m.items) == 0 {
		b.WriteString(menuDescStyle.Render("no games registered"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		menuBoxStyle.Render(b.String()),
		m.help.View(menuHelp{m.keys}),
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Selected returns the chosen variant, or nil if none was chosen yet.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// WantsResults returns true if user asked for the session results.
func (m MenuModel) WantsResults() bool {
	return m.wantsResults
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
