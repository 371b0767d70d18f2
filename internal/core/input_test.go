package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionStopX, "StopX"},
		{ActionMute, "Mute"},
		{Action(-1), "Unknown"},
		{ActionMute + 1, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", int(tt.a), got, tt.want)
		}
	}
}

func TestInputFrameSharedAcrossCopies(t *testing.T) {
	f := NewInputFrame()
	cp := f
	cp.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Fatal("copies should share the action set")
	}

	f.SetPointer(42)
	f.Clear()
	if cp.Has(ActionLeft) || f.Pointer.Active {
		t.Error("Clear should empty the frame")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Fatal("zero frame has no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on a zero frame should work")
	}
}

func TestRuntimeRate(t *testing.T) {
	if got := (RuntimeConfig{}).Rate(); got != DefaultTickRate {
		t.Errorf("Rate() = %d, want %d", got, DefaultTickRate)
	}
	if got := (RuntimeConfig{TickRate: 30}).Rate(); got != 30 {
		t.Errorf("Rate() = %d, want 30", got)
	}
}
