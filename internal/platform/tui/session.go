package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickman-seasons/internal/audio"
	"github.com/vovakirdan/stickman-seasons/internal/core"
	"github.com/vovakirdan/stickman-seasons/internal/games/seasons"
	"github.com/vovakirdan/stickman-seasons/internal/registry"
)

// Options configures a session.
type Options struct {
	Runtime core.RuntimeConfig
	// StartLevel skips the menu and starts a game at this level index.
	// A negative value opens the main menu.
	StartLevel int
	Audio      *audio.Dispatcher
	Logger     *log.Logger
	Username   string // Set for SSH sessions
}

type screenKind int

const (
	screenMenu screenKind = iota
	screenLevels
	screenGame
)

// SessionModel manages the full session flow: menu -> level select -> game
// -> menu. It is the top-level model for local and SSH sessions.
type SessionModel struct {
	config   core.RuntimeConfig
	audio    *audio.Dispatcher
	logger   *log.Logger
	username string
	screen   screenKind
	menu     MenuModel
	levels   LevelSelectModel
	game     *GameModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts Options) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dispatcher := opts.Audio
	if dispatcher == nil {
		dispatcher = audio.NewDispatcher(audio.Null{}, logger)
	}
	if opts.Username != "" {
		logger = logger.With("user", opts.Username)
	}

	m := SessionModel{
		config:   opts.Runtime,
		audio:    dispatcher,
		logger:   logger,
		username: opts.Username,
		menu:     NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH, dispatcher.Muted()),
	}
	if opts.StartLevel >= 0 {
		m.newGame(opts.StartLevel)
	}
	return m
}

// newGame creates the game model; its Init must run next.
func (m *SessionModel) newGame(level int) bool {
	game, err := registry.Create(seasons.GameID)
	if err != nil {
		m.logger.Error("cannot create game", "err", err)
		return false
	}
	gm := NewGameModel(game, m.config, level, m.audio, m.logger)
	m.game = &gm
	m.screen = screenGame
	return true
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame && m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.updateGame(msg)
		}
	case screenLevels:
		return m.updateLevels(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a game that just ended
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceStart:
		if m.newGame(0) {
			return m, m.game.Init()
		}

	case ChoiceSelectLevel:
		m.levels = NewLevelSelectModel(m.config.ScreenW, m.config.ScreenH)
		m.screen = screenLevels
		return m, m.levels.Init()

	case ChoiceToggleSound:
		m.menu.SetMuted(m.audio.ToggleMute())
	}

	return m, cmd
}

// updateLevels handles updates on the level select screen.
func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newLevels, cmd := m.levels.Update(msg)
	if levelsModel, ok := newLevels.(LevelSelectModel); ok {
		m.levels = levelsModel
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.levels.IsGoingBack():
		m.toMenu()
		return m, m.menu.Init()

	case m.levels.Selected() >= 0:
		if m.newGame(m.levels.Selected()) {
			return m, m.game.Init()
		}
		m.toMenu()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	// Check if user quit entirely
	if m.game.IsQuitting() {
		m.audio.Handle([]core.Event{{Kind: core.EventAmbientStop}})
		m.quitting = true
		return m, tea.Quit
	}

	// Check if user went back to the menu
	if m.game.BackToMenu() {
		m.audio.Handle([]core.Event{{Kind: core.EventAmbientStop}})
		m.toMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// toMenu drops the current game and shows a fresh main menu.
func (m *SessionModel) toMenu() {
	m.game = nil
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH, m.audio.Muted())
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	case screenLevels:
		return m.levels.View()
	}
	return m.menu.View()
}

// Run starts a local session and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse drag steers the stickman
	)

	_, err := p.Run()
	return err
}
