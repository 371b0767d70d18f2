package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stickman-seasons/internal/games/seasons"
)

// LevelKeyMap defines the key bindings for the level select screen.
type LevelKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LevelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Back, k.Quit},
	}
}

// DefaultLevelKeyMap returns default key bindings.
func DefaultLevelKeyMap() LevelKeyMap {
	return LevelKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelSelectModel lists every level and starts a game at the chosen one.
type LevelSelectModel struct {
	table     table.Model
	help      help.Model
	keys      LevelKeyMap
	width     int
	height    int
	selected  int // -1 until a level is chosen
	goingBack bool
	quitting  bool
}

// NewLevelSelectModel creates the level select screen.
func NewLevelSelectModel(width, height int) LevelSelectModel {
	h := help.New()
	h.Width = width
	m := LevelSelectModel{
		help:     h,
		keys:     DefaultLevelKeyMap(),
		width:    width,
		height:   height,
		selected: -1,
	}
	m.table = m.createTable()
	return m
}

// LevelRows returns one table row per level.
func LevelRows() []table.Row {
	levels := seasons.Levels()
	rows := make([]table.Row, len(levels))
	for i, lvl := range levels {
		tier := "Classic"
		if lvl.Index >= seasons.ChallengeTier {
			tier = "Challenge"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", lvl.Index+1),
			fmt.Sprintf("%c %s", lvl.Glyph, lvl.Name),
			string(lvl.Weather),
			tier,
		}
	}
	return rows
}

// createTable creates a new table with appropriate columns.
func (m *LevelSelectModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 20},
		{Title: "Weather", Width: 10},
		{Title: "Tier", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(LevelRows()),
		table.WithFocused(true),
		table.WithHeight(max(min(m.height-8, seasons.LevelCount+1), 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the level select model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level select screen.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Select):
			m.selected = m.table.Cursor()
			return m, nil
		}

	case tea.WindowSizeMsg:
		cursor := m.table.Cursor()
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level select screen.
func (m LevelSelectModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("SELECT LEVEL", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))

	b.WriteString("\n")
	if detail := levelDetail(m.table.Cursor()); detail != "" {
		detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Italic(true)
		b.WriteString(centerText(detailStyle.Render(detail), m.width))
		b.WriteString("\n")
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// levelDetail describes the highlighted level.
func levelDetail(i int) string {
	lvl, err := seasons.LevelAt(i)
	if err != nil {
		return ""
	}
	parts := []string{fmt.Sprintf("%c %s", lvl.Glyph, lvl.Name), "ambient: " + lvl.Ambient}
	if lvl.SpeedBoost > 1 {
		parts = append(parts, fmt.Sprintf("speed x%.1f", lvl.SpeedBoost))
	}
	if lvl.Neon {
		parts = append(parts, "neon")
	}
	return strings.Join(parts, "  ·  ")
}

// Selected returns the chosen level index, or -1.
func (m LevelSelectModel) Selected() int {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LevelSelectModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}
