// Package tui provides the Bubble Tea front end for Stickman Seasons.
// It runs the session flow (menu, level select, game), maps keys and mouse
// drags to input intents, renders the Screen buffer with lipgloss and serves
// the same flow over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// tick loop so a loop left over from a previous game is ignored.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick loop id.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next tick of loop gen at the configured rate.
func tickCmd(cfg core.RuntimeConfig, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(cfg.Rate())
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
