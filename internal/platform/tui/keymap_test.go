package tui

import (
	"slices"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stickman-seasons/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey("a"), core.ActionLeft, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"b", runeKey("b"), core.ActionBack, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"m", runeKey("m"), core.ActionMute, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHoldTrackerFirstPressWaitsInitialHold(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(0, 0)

	got := h.Press(core.ActionLeft, t0)
	if !slices.Equal(got, []core.Action{core.ActionLeft}) {
		t.Fatalf("Press = %v, want [Left]", got)
	}

	// Past Hold but within InitialHold: still held
	if got := h.Expire(t0.Add(DefaultHold + time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire before initial hold = %v, want none", got)
	}
	got = h.Expire(t0.Add(DefaultInitialHold))
	if !slices.Equal(got, []core.Action{core.ActionStopX}) {
		t.Errorf("Expire after initial hold = %v, want [StopX]", got)
	}
	if got := h.Expire(t0.Add(time.Hour)); len(got) != 0 {
		t.Errorf("released axis should not stop twice, got %v", got)
	}
}

func TestHoldTrackerRepeatsUseShortHold(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(0, 0)
	h.Press(core.ActionUp, t0)
	t1 := t0.Add(30 * time.Millisecond)
	h.Press(core.ActionUp, t1)

	if got := h.Expire(t1.Add(DefaultHold - time.Millisecond)); len(got) != 0 {
		t.Errorf("Expire within hold = %v, want none", got)
	}
	got := h.Expire(t1.Add(DefaultHold))
	if !slices.Equal(got, []core.Action{core.ActionStopY}) {
		t.Errorf("Expire after hold = %v, want [StopY]", got)
	}
}

func TestHoldTrackerReversal(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(0, 0)
	h.Press(core.ActionLeft, t0)
	got := h.Press(core.ActionRight, t0.Add(10*time.Millisecond))
	want := []core.Action{core.ActionStopX, core.ActionRight}
	if !slices.Equal(got, want) {
		t.Errorf("reversal = %v, want %v", got, want)
	}
}

func TestHoldTrackerAxesIndependent(t *testing.T) {
	h := NewHoldTracker()
	t0 := time.Unix(0, 0)
	h.Press(core.ActionLeft, t0)
	got := h.Press(core.ActionUp, t0)
	if !slices.Equal(got, []core.Action{core.ActionUp}) {
		t.Errorf("vertical press = %v, want [Up]", got)
	}

	got = h.Release()
	if !slices.Equal(got, []core.Action{core.ActionStopX, core.ActionStopY}) {
		t.Errorf("Release = %v, want [StopX StopY]", got)
	}
	if got := h.Release(); len(got) != 0 {
		t.Errorf("second Release = %v, want none", got)
	}
}

func TestHoldTrackerPassesOtherActions(t *testing.T) {
	h := NewHoldTracker()
	got := h.Press(core.ActionPause, time.Now())
	if !slices.Equal(got, []core.Action{core.ActionPause}) {
		t.Errorf("Press(Pause) = %v, want [Pause]", got)
	}
}
