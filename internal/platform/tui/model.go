// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping and result recording.
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

	"github.com/vovakirdan/tui-blackbox/internal/core"
	"github.com/vovakirdan/tui-blackbox/internal/games/blackbox"
	"github.com/vovakirdan/tui-blackbox/internal/storage"
)

// ResultStore records finished games. *storage.Store implements it.
type ResultStore interface {
	SaveResult(r storage.Result) (int64, error)
	HighScore(layoutID string) (int, error)
}

// bestMinWidth is the narrowest screen that fits the best score beside the HUD.
const bestMinWidth = 64

// Options configures a game model.
type Options struct {
	Store    ResultStore // Optional; results are not recorded when nil
	Logger   *log.Logger // Optional; logs are discarded when nil
	ShowHelp bool        // Show the key help line under the board
}

// Model is the Bubble Tea model for running a Black Box session.
type Model struct {
	session     *blackbox.Session
	screen      *core.Screen
	store       ResultStore
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        *KeyMapper
	help        help.Model
	showHelp    bool
	inputFrame  core.InputFrame
	gameState   core.GameState
	highScore   int
	quitting    bool
	resultSaved bool // Whether the result has been saved for the current game
}

// NewModel creates a new Bubble Tea model for the given session.
// The session is reset with cfg; an error means the layout is unplayable.
func NewModel(session *blackbox.Session, cfg core.RuntimeConfig, opts Options) (*Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := &Model{
		session:    session,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		showHelp:   opts.ShowHelp,
		inputFrame: core.NewInputFrame(),
	}

	if err := m.newGame(); err != nil {
		return nil, err
	}
	return m, nil
}

// newGame resets the session and refreshes the cached state.
func (m *Model) newGame() error {
	if err := m.session.Reset(m.boardConfig()); err != nil {
		return err
	}
	m.gameState = m.session.State()
	m.resultSaved = false
	m.loadHighScore()

	m.logger.Debug("new game", "layout", m.session.ID(), "seed", m.config.Seed)
	return nil
}

// boardConfig is the runtime config minus the rows taken by the help line.
func (m *Model) boardConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH -= m.helpHeight()
	return cfg
}

func (m *Model) helpHeight() int {
	if !m.showHelp {
		return 0
	}
	if m.help.ShowAll {
		return len(m.keys.Keys.FullHelp()[0])
	}
	return 1
}

func (m *Model) loadHighScore() {
	if m.store == nil {
		return
	}
	high, err := m.store.HighScore(m.session.ID())
	if err != nil {
		m.logger.Warn("cannot read high score", "layout", m.session.ID(), "err", err)
		return
	}
	m.highScore = high
}

// Init implements tea.Model. The game is turn-based, so there is no tick loop.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input. Each key press is one Step.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.handleResize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	defer m.inputFrame.Clear()

	if m.inputFrame.Has(core.ActionRestart) {
		if m.gameState.GameOver {
			m.config.Seed = time.Now().UnixNano()
			if err := m.newGame(); err != nil {
				m.logger.Error("cannot restart", "layout", m.session.ID(), "err", err)
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if m.inputFrame.Empty() {
		return m, nil
	}

	result := m.session.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		m.saveResult()
	}

	return m, nil
}

// handleResize updates the screen size. The game in progress is kept.
func (m *Model) handleResize(w, h int) {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.help.Width = w

	cfg := m.boardConfig()
	m.screen.Resize(cfg.ScreenW, cfg.ScreenH)
	m.session.Resize(cfg.ScreenW, cfg.ScreenH)
}

// saveResult records the finished game once.
func (m *Model) saveResult() {
	m.resultSaved = true

	snap := m.session.Snapshot()
	result := storage.Result{
		LayoutID:     snap.Layout,
		Score:        snap.Score,
		Rays:         snap.Rays,
		WrongGuesses: m.session.WrongGuesses(),
		Solved:       m.gameState.Solved,
	}
	m.logger.Info("game finished",
		"layout", result.LayoutID,
		"score", result.Score,
		"rays", result.Rays,
		"solved", result.Solved,
	)

	if m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(result); err != nil {
		m.logger.Error("cannot save result", "layout", result.LayoutID, "err", err)
		return
	}
	if result.Solved && result.Score > m.highScore {
		m.highScore = result.Score
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".blackbox", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last known game state.
func (m *Model) State() core.GameState {
	return m.gameState
}

// HighScore returns the best recorded score for the layout.
func (m *Model) HighScore() int {
	return m.highScore
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	if m.highScore > 0 && m.screen.Width() >= bestMinWidth && m.session.Snapshot().Status != blackbox.StatusPausedSmall {
		best := fmt.Sprintf("Best: %d", m.highScore)
		m.screen.DrawTextColored(m.screen.Width()-len(best)-1, 1, best, core.ColorYellow)
	}
	out := RenderScreen(m.screen)

	if m.showHelp {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
		out += "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
	}
	return out
}

// Run starts the Bubble Tea program for the given session.
func Run(session *blackbox.Session, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(session, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
