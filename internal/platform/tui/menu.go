package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blackbox/internal/config"
	"github.com/vovakirdan/tui-blackbox/internal/core"
	"github.com/vovakirdan/tui-blackbox/internal/registry"
)

// HighScorer looks up the best score of a layout.
type HighScorer interface {
	HighScore(layoutID string) (int, error)
}

// MenuItem represents a selectable layout in the menu.
type MenuItem struct {
	LayoutID string
	Title    string
	Best     int // Best solved score, 0 if none
}

// MenuKeyMap defines the key bindings for the layout menu.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Harder     key.Binding
	Easier     key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Easier, k.Harder, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down", "next"),
		),
		Easier: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left", "easier"),
		),
		Harder: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right", "harder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the layout picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	difficulty     int // Index into config.Presets
	width          int
	height         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem // Set when user selects a layout
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. The cursor starts on startLayout
// and the difficulty on preset when they are known.
func NewMenuModel(store HighScorer, cfg core.RuntimeConfig, startLayout string, preset config.DifficultyPreset) MenuModel {
	all := registry.List()
	items := make([]MenuItem, 0, len(all))
	cursor := 0

	for i, l := range all {
		item := MenuItem{LayoutID: l.ID, Title: l.Title}
		if store != nil {
			if best, err := store.HighScore(l.ID); err == nil {
				item.Best = best
			}
		}
		if l.ID == startLayout {
			cursor = i
		}
		items = append(items, item)
	}

	difficulty := 1
	for i, p := range config.Presets {
		if p == preset {
			difficulty = i
		}
	}

	return MenuModel{
		items:      items,
		cursor:     cursor,
		difficulty: difficulty,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keys:       DefaultMenuKeyMap(),
		help:       help.New(),
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Easier):
		if m.difficulty > 0 {
			m.difficulty--
		}

	case key.Matches(msg, m.keys.Harder):
		if m.difficulty < len(config.Presets)-1 {
			m.difficulty++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  B L A C K   B O X  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a layout", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := ""
		if item.Best > 0 {
			best = fmt.Sprintf("  best %d", item.Best)
		}

		b.WriteString(centerText(fmt.Sprintf("%s%-24s%s", cursor, item.Title, best), m.width))
		b.WriteString("\n")
	}

	preset := m.Difficulty()
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Random layout: < %s, %d atoms >", preset, config.AtomsForPreset(preset)), m.width))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the preset chosen for the random layout.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LayoutID        string
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store HighScorer, cfg core.RuntimeConfig, startLayout string, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, startLayout, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.LayoutID = m.Selected().LayoutID
	} else {
		result.Quit = true
	}

	return result, nil
}
