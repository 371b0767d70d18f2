package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stickman-seasons/internal/games/seasons"
)

// MenuChoice is what the player picked on the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceSelectLevel
	ChoiceToggleSound
	ChoiceQuit
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	muted     bool
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(width, height int, muted bool) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		muted:     muted,
		keyMapper: NewKeyMapper(),
	}
}

// items returns the menu entries in display order.
func (m MenuModel) items() []string {
	sound := "Sound: On"
	if m.muted {
		sound = "Sound: Off"
	}
	return []string{"Start", "Select Level", sound, "Quit"}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.choice = ChoiceNone

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = ChoiceQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items())-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = MenuChoice(m.cursor + 1)
	}

	if msg.String() == "m" {
		m.choice = ChoiceToggleSound
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	glyphStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	top := max((m.height-12)/2, 1)
	b.WriteString(strings.Repeat("\n", top))
	b.WriteString(centerText(titleStyle.Render("S T I C K M A N   S E A S O N S"), m.width))
	b.WriteString("\n\n")

	var glyphs []string
	for _, lvl := range seasons.Levels()[:seasons.ChallengeTier] {
		glyphs = append(glyphs, string(lvl.Glyph))
	}
	b.WriteString(centerText(glyphStyle.Render(strings.Join(glyphs, " ")), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items() {
		line := "  " + item + "  "
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %s <", item))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  M: Sound  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the entry picked by the last update, if any.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// SetMuted updates the sound entry label.
func (m *MenuModel) SetMuted(muted bool) {
	m.muted = muted
}
