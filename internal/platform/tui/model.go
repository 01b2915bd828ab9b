// Package tui provides the Bubble Tea integration for the pursuit game.
// Play is turn-based: every game key is one Step, there is no tick loop.
package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
	"github.com/vovakirdan/tui-pursuit/internal/storage"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

// Recordable is a game that can describe its session for the result store.
type Recordable interface {
	Record() storage.Result
}

// Model is the Bubble Tea model for playing one game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	state    core.GameState
	quitting bool
	saved    bool // result stored for the current game over
}

// NewModel creates a model for game and starts a session.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpHeight)),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
	}
	m.game.Reset(m.gameConfig())
	m.state = m.game.State()
	return m
}

func (m Model) gameConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: m.screen.Width(), ScreenH: m.screen.Height()}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}
	return m, nil
}

// handleKey plays one turn for a game key.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.saveResult()
		m.quitting = true
		return m, tea.Quit
	}

	result := m.game.Step(core.FrameOf(action))
	m.state = result.State
	if m.state.GameOver {
		m.saveResult()
	} else {
		m.saved = false
	}
	return m, nil
}

// handleResize resizes the screen buffer. The session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// saveResult stores the session result once per game over. A session that
// is quit before it ends is stored too, unless no turn was played.
func (m *Model) saveResult() {
	if m.saved || m.store == nil {
		return
	}
	rec, ok := m.game.(Recordable)
	if !ok {
		return
	}
	r := rec.Record()
	if !m.state.GameOver && r.Turns == 0 {
		return
	}
	m.saved = true
	if _, err := m.store.SaveResult(r); err != nil {
		m.logger.Error("cannot save result", "level", r.LevelID, "error", err)
		return
	}
	m.logger.Debug("result saved", "level", r.LevelID, "score", r.Score, "outcome", r.Outcome)
}

// saveScreenshot writes the current screen to ~/.pursuit/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".pursuit", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the game state after the last turn.
func (m Model) State() core.GameState {
	return m.state
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays game in the terminal until the user quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, logger, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
