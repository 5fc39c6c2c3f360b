package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// SessionModel manages the menu -> game -> menu flow. It is the top-level
// model for SSH sessions and for the local menu command.
type SessionModel struct {
	config    core.RuntimeConfig
	opts      Options
	menu      MenuModel
	gameModel *GameModel
	resultsUI *ResultsModel
	results   []Result
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	opts.Standalone = false
	return SessionModel{
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.resultsUI != nil:
		return m.updateResults(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsResults() {
		results := NewResultsModel(m.results, m.config.ScreenW, m.config.ScreenH)
		m.resultsUI = &results
		m.menu = NewMenuModel(m.config)
		return m, results.Init()
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.ID)
	if err != nil {
		// The menu only lists registered games.
		m.opts.logger().Error("cannot start game", "game", selected.ID, "error", err)
		m.menu = NewMenuModel(m.config)
		return m, nil
	}

	gameModel := NewGameModel(game, m.config, m.opts)
	m.gameModel = &gameModel
	return m, m.gameModel.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.results = append(m.results, m.gameModel.Results()...)
		m.gameModel = nil
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m SessionModel) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.resultsUI.Update(msg)
	if results, ok := newModel.(ResultsModel); ok {
		m.resultsUI = &results
	}

	if m.resultsUI.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.resultsUI.IsGoingBack() {
		m.resultsUI = nil
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.resultsUI != nil:
		return m.resultsUI.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// Results returns the games finished in this session, oldest first.
func (m SessionModel) Results() []Result {
	return m.results
}

// RunSession runs the menu and games locally until the user quits.
func RunSession(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewSessionModel(cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
