package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stickman-seasons/internal/audio"
	"github.com/vovakirdan/stickman-seasons/internal/core"
	"github.com/vovakirdan/stickman-seasons/internal/registry"
)

// Minimum terminal size for the play field.
const (
	MinWidth  = 40
	MinHeight = 16
)

// resizer is implemented by games that keep their state across resizes.
type resizer interface {
	Resize(w, h int)
}

// levelSelector is implemented by games that can start at a given level.
type levelSelector interface {
	SelectLevel(i int) error
}

// GameModel runs one game: ticks, input and rendering.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	canvas     *core.ScreenCanvas
	config     core.RuntimeConfig
	level      int
	audio      *audio.Dispatcher
	logger     *log.Logger
	inputFrame core.InputFrame
	hold       *HoldTracker
	keyMapper  *KeyMapper
	gameState  core.GameState
	tickGen    uint64
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model that starts at level.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, level int, dispatcher *audio.Dispatcher, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if dispatcher == nil {
		dispatcher = audio.NewDispatcher(audio.Null{}, logger)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return GameModel{
		game:       game,
		screen:     screen,
		canvas:     core.NewScreenCanvas(screen),
		config:     cfg,
		level:      level,
		audio:      dispatcher,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		hold:       NewHoldTracker(),
		keyMapper:  NewKeyMapper(),
		tickGen:    nextTickGen(),
	}
}

// Init resets the game, jumps to the start level and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.level > 0 {
		if ls, ok := m.game.(levelSelector); ok {
			if err := ls.SelectLevel(m.level); err != nil {
				m.logger.Warn("cannot start at level", "level", m.level+1, "err", err)
			}
		}
	}
	m.logger.Info("game started", "game", m.game.ID(), "level", m.level+1, "size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config, m.tickGen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}
	return m, nil
}

// tooSmall reports whether the terminal cannot hold the play field.
func (m GameModel) tooSmall() bool {
	return m.config.ScreenW < MinWidth || m.config.ScreenH < MinHeight
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, nil
	}

	switch action {
	case core.ActionBack:
		// Back leaves a stopped game and pauses a running one
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, nil
		}
		m.setAll(m.hold.Release())
		m.inputFrame.Set(core.ActionPause)

	case core.ActionMute:
		muted := m.audio.ToggleMute()
		m.logger.Debug("sound toggled", "muted", muted)

	case core.ActionPause:
		m.setAll(m.hold.Release())
		m.inputFrame.Set(core.ActionPause)

	case core.ActionRestart, core.ActionConfirm:
		if m.gameState.GameOver || (action == core.ActionRestart && m.gameState.Paused) {
			m.inputFrame.Set(core.ActionRestart)
		}

	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		if !m.gameState.GameOver && !m.gameState.Paused {
			m.setAll(m.hold.Press(action, time.Now()))
		}
	}

	return m, nil
}

// handleMouse turns a left-button drag into a pointer intent.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch msg.Action {
	case tea.MouseActionPress, tea.MouseActionMotion:
		m.inputFrame.SetPointer((float64(msg.X) + 0.5) * core.CellW)
	}
	return m, nil
}

// handleResize keeps the game running in the new window size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// The field is frozen while the window is too small to show it
	if m.tooSmall() {
		m.inputFrame.Clear()
		return m, tickCmd(m.config, m.tickGen)
	}

	m.setAll(m.hold.Expire(now))

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.audio.Handle(result.Events)

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level+1)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config, m.tickGen)
}

func (m GameModel) setAll(actions []core.Action) {
	for _, a := range actions {
		m.inputFrame.Set(a)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Debug("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".seasons", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Debug("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall() {
		return resizePrompt(m.config.ScreenW, m.config.ScreenH)
	}

	m.screen.Clear()
	m.game.Render(m.canvas)
	return RenderScreen(m.screen)
}

// resizePrompt asks for a bigger terminal.
func resizePrompt(w, h int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	lines := []string{
		style.Render("Terminal too small"),
		fmt.Sprintf("need %dx%d, have %dx%d", MinWidth, MinHeight, w, h),
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", max(h/2-1, 0)))
	for _, l := range lines {
		b.WriteString(centerText(l, w))
		b.WriteString("\n")
	}
	return b.String()
}

// State returns the last reported game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
