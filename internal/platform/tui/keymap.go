package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "h", "left":
		return core.ActionLeft, false
	case "d", "l", "right":
		return core.ActionRight, false
	case "w", "k", "up":
		return core.ActionUp, false
	case "s", "j", "down":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "m":
		return core.ActionMute, false
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// Default hold timeouts for steering keys.
const (
	DefaultHold        = 220 * time.Millisecond
	DefaultInitialHold = 550 * time.Millisecond
)

// HoldTracker turns key presses into held steering. Terminals report key
// repeats but never key releases, so an axis counts as released when no
// repeat arrived within Hold. The first press of a burst waits InitialHold,
// covering the keyboard's delay before auto-repeat starts.
type HoldTracker struct {
	Hold        time.Duration
	InitialHold time.Duration

	axes [2]heldAxis // 0 = horizontal, 1 = vertical
}

type heldAxis struct {
	dir      core.Action // ActionNone when released
	last     time.Time
	repeated bool
}

// NewHoldTracker creates a tracker with the default timeouts.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{Hold: DefaultHold, InitialHold: DefaultInitialHold}
}

func axisOf(a core.Action) (int, bool) {
	switch a {
	case core.ActionLeft, core.ActionRight:
		return 0, true
	case core.ActionUp, core.ActionDown:
		return 1, true
	}
	return 0, false
}

func stopFor(axis int) core.Action {
	if axis == 0 {
		return core.ActionStopX
	}
	return core.ActionStopY
}

// Press records a steering key at time now and returns the actions to send.
// Reversing direction releases the axis before steering the other way.
// Non-steering actions pass through unchanged.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.Action {
	axis, ok := axisOf(a)
	if !ok {
		return []core.Action{a}
	}
	st := &h.axes[axis]
	var out []core.Action
	switch st.dir {
	case a:
		st.repeated = true
	case core.ActionNone:
		st.repeated = false
	default:
		out = append(out, stopFor(axis))
		st.repeated = false
	}
	st.dir = a
	st.last = now
	return append(out, a)
}

// Expire returns stop actions for every axis whose key went quiet.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var out []core.Action
	for axis := range h.axes {
		st := &h.axes[axis]
		if st.dir == core.ActionNone {
			continue
		}
		timeout := h.Hold
		if !st.repeated && h.InitialHold > timeout {
			timeout = h.InitialHold
		}
		if now.Sub(st.last) >= timeout {
			st.dir = core.ActionNone
			out = append(out, stopFor(axis))
		}
	}
	return out
}

// Release drops all held keys, e.g. when the game pauses.
func (h *HoldTracker) Release() []core.Action {
	var out []core.Action
	for axis := range h.axes {
		if h.axes[axis].dir != core.ActionNone {
			h.axes[axis] = heldAxis{}
			out = append(out, stopFor(axis))
		}
	}
	return out
}
