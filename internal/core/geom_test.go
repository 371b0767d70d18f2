package core

import (
	"math"
	"testing"
)

func TestVec2(t *testing.T) {
	a := V(3, 4)
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := a.Add(V(1, 1)); got != V(4, 5) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(V(1, 1)); got != V(2, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(-2); got != V(-6, -8) {
		t.Errorf("Scale = %v", got)
	}
}

func TestBoxContains(t *testing.T) {
	b := BoxAt(V(100, 50), 40, 20)
	tests := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", V(100, 50), true},
		{"inside corner", V(119, 59), true},
		{"on right edge", V(120, 50), false},
		{"on bottom edge", V(100, 60), false},
		{"left of box", V(79, 50), false},
		{"above box", V(100, 39), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBoxGrow(t *testing.T) {
	b := BoxAt(V(0, 0), 10, 10).Grow(5)
	if b.HalfW != 10 || b.HalfH != 10 {
		t.Fatalf("Grow = %+v, want half extents 10", b)
	}
	if !b.Contains(V(9, -9)) {
		t.Error("grown box should contain (9, -9)")
	}
	if got := b.Min(); got != V(-10, -10) {
		t.Errorf("Min = %v, want (-10, -10)", got)
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"overlapping", BoxAt(V(0, 0), 10, 10), BoxAt(V(5, 5), 10, 10), true},
		{"apart horizontally", BoxAt(V(0, 0), 10, 10), BoxAt(V(20, 0), 10, 10), false},
		{"apart vertically", BoxAt(V(0, 0), 10, 10), BoxAt(V(0, 20), 10, 10), false},
		{"touching edges", BoxAt(V(0, 0), 10, 10), BoxAt(V(10, 0), 10, 10), false},
		{"nested", BoxAt(V(0, 0), 20, 20), BoxAt(V(1, 1), 2, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps is not symmetric")
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 8, 2, 8}, // inverted bounds resolve to lo
		{math.Inf(1), 0, 1, 1},
	}
	for _, tt := range tests {
		if got := ClampF(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
