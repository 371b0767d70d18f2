package seasons

import (
	"errors"
	"testing"
)

func TestLevelTable(t *testing.T) {
	all := Levels()
	if len(all) != 16 {
		t.Fatalf("expected 16 levels, got %d", len(all))
	}
	for i, lvl := range all {
		if lvl.Index != i {
			t.Errorf("level %d has index %d", i, lvl.Index)
		}
		wantBackdrop := "spring"
		if i >= ChallengeTier {
			wantBackdrop = "desert"
		}
		if lvl.Background != wantBackdrop {
			t.Errorf("level %d backdrop = %q, expected %q", i, lvl.Background, wantBackdrop)
		}
		if lvl.Name == "" || lvl.Ambient == "" {
			t.Errorf("level %d missing name or ambient track", i)
		}
	}

	// Only the neon levels glow and only Thunderstorm is faster
	for i, lvl := range all {
		if lvl.Neon != (i == 6 || i == 14) {
			t.Errorf("level %d neon = %v", i, lvl.Neon)
		}
		boost := 1.0
		if i == 5 {
			boost = 1.35
		}
		if lvl.SpeedBoost != boost {
			t.Errorf("level %d speed boost = %f, expected %f", i, lvl.SpeedBoost, boost)
		}
	}
}

func TestLevelsReturnsCopy(t *testing.T) {
	all := Levels()
	all[0].Name = "changed"
	if lvl, _ := LevelAt(0); lvl.Name != "Spring Morning" {
		t.Error("Levels should not expose the table")
	}
}

func TestLevelAt(t *testing.T) {
	tests := []struct {
		index   int
		name    string
		wantErr bool
	}{
		{0, "Spring Morning", false},
		{5, "Thunderstorm", false},
		{15, "Rainbow Finale", false},
		{-1, "", true},
		{16, "", true},
	}

	for _, tt := range tests {
		lvl, err := LevelAt(tt.index)
		if tt.wantErr {
			if !errors.Is(err, ErrLevelOutOfRange) {
				t.Errorf("LevelAt(%d) err = %v, expected ErrLevelOutOfRange", tt.index, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("LevelAt(%d) unexpected error: %v", tt.index, err)
			continue
		}
		if lvl.Name != tt.name {
			t.Errorf("LevelAt(%d) = %q, expected %q", tt.index, lvl.Name, tt.name)
		}
	}
}

func TestProgression(t *testing.T) {
	p := NewProgression(2)
	if p.Index() != 0 || p.Keys() != 0 {
		t.Fatal("progression should start at level 0 with no keys")
	}

	if p.CollectKey() {
		t.Error("one of two keys should not complete the level")
	}
	if !p.CollectKey() {
		t.Error("second key should complete the level")
	}
	if p.CollectKey(); p.Keys() != 2 {
		t.Errorf("keys = %d, expected capped at 2", p.Keys())
	}

	lvl := p.Advance()
	if lvl.Index != 1 || p.Keys() != 0 {
		t.Errorf("advance should move to level 1 with keys reset, got %d/%d", lvl.Index, p.Keys())
	}

	if err := p.SetLevel(LevelCount - 1); err != nil {
		t.Fatal(err)
	}
	if lvl := p.Advance(); lvl.Index != 0 {
		t.Errorf("advance from the last level = %d, expected 0", lvl.Index)
	}

	if err := p.SetLevel(99); err == nil {
		t.Error("SetLevel(99) should fail")
	}
	if p.Index() != 0 {
		t.Error("failed SetLevel should keep the level")
	}
}

func TestNewProgressionMinimumKeys(t *testing.T) {
	p := NewProgression(0)
	if p.KeysNeeded() != 1 {
		t.Errorf("keys needed = %d, expected at least 1", p.KeysNeeded())
	}
}
