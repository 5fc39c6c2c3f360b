package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Sounder plays a cue for a game event.
type Sounder interface {
	Play(e core.Event)
}

// Options configures a GameModel.
type Options struct {
	// Logger receives game lifecycle messages. Nil discards them.
	Logger *log.Logger

	// Sounder plays event cues. Nil means silent.
	Sounder Sounder

	// Standalone makes Back quit the program instead of returning to a menu.
	Standalone bool

	// ScreenshotDir is where ctrl+s writes the current frame.
	// If empty, ~/.pong/screenshots is used.
	ScreenshotDir string
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// configReporter is implemented by games that can fall back to defaults
// when their config fails to load.
type configReporter interface {
	ConfigErr() error
}

// GameModel is the Bubble Tea model that drives one game: it turns key
// presses into input frames, measures frame time and renders the screen.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	log        *log.Logger
	keys       KeyMap
	input      core.InputFrame
	state      core.GameState
	clock      *frameClock
	owner      uint64
	results    []Result
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		opts:   opts,
		log:    opts.logger().With("game", game.ID()),
		keys:   DefaultKeyMap(),
		input:  core.NewInputFrame(),
		clock:  &frameClock{},
		owner:  nextOwner(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.clock.reset()
	if cr, ok := m.game.(configReporter); ok {
		if err := cr.ConfigErr(); err != nil {
			m.log.Warn("using default config", "error", err)
		}
	}
	m.log.Info("game started")
	return tickCmd(m.config.TickRate, m.owner)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The field is logical, so a resize only changes the mapping.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		if msg.owner != m.owner {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Capture) {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Error("screenshot failed", "error", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.opts.Standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.input, m.clock.elapsed(now))
	m.state = result.State
	m.input.Clear()

	for _, e := range result.Events {
		if m.opts.Sounder != nil {
			m.opts.Sounder.Play(e)
		}
		switch e {
		case core.EventGameOver:
			m.log.Info("game over", "score", m.state.Score, "won", m.state.Won)
			m.results = append(m.results, Result{
				GameID:   m.game.ID(),
				Title:    m.game.Title(),
				Score:    m.state.Score,
				Won:      m.state.Won,
				Finished: now,
			})
		case core.EventRestart:
			m.log.Info("game restarted")
		}
	}

	return m, tickCmd(m.config.TickRate, m.owner)
}

func (m GameModel) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot: %w", err)
		}
		dir = filepath.Join(home, ".pong", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	m.game.Render(m.screen)
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// Results returns the games finished in this model, oldest first.
func (m GameModel) Results() []Result {
	return m.results
}

// IsQuitting returns true if the user asked to quit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	opts.Standalone = true
	p := tea.NewProgram(NewGameModel(game, cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
