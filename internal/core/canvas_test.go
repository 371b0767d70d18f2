package core

import "testing"

func TestWorldSize(t *testing.T) {
	w, h := WorldSize(80, 24)
	if w != 640 || h != 384 {
		t.Errorf("WorldSize(80, 24) = (%f, %f), expected (640, 384)", w, h)
	}
}

func TestToCell(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 0},
		{"inside first cell", 7.9, 15.9, 0, 0},
		{"second cell", 8, 16, 1, 1},
		{"negative", -1, -1, -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := ToCell(tc.x, tc.y)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("ToCell(%f, %f) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestCanvasPlotAndText(t *testing.T) {
	s := NewScreen(20, 5)
	c := NewScreenCanvas(s)

	c.Plot(20, 20, 'o', ColorRed)
	if cell := s.GetCell(2, 1); cell.Rune != 'o' || cell.Color != ColorRed {
		t.Errorf("Plot should land in cell (2, 1), got %+v", cell)
	}

	c.TextCentered(80, 48, "abcd", ColorGold)
	if s.Get(8, 3) != 'a' || s.Get(11, 3) != 'd' {
		t.Errorf("TextCentered misplaced text, row 3 = %q", s.Row(3))
	}

	// Off-surface drawing is clipped silently
	c.Plot(-100, -100, 'x', ColorRed)
	c.Text(1000, 1000, "clip", ColorRed)
}

func TestCanvasLine(t *testing.T) {
	s := NewScreen(10, 5)
	c := NewScreenCanvas(s)

	c.Line(4, 8, 76, 8, '-', ColorWhite)
	for x := 0; x < 10; x++ {
		if s.Get(x, 0) != '-' {
			t.Errorf("horizontal line missing at x=%d, row = %q", x, s.Row(0))
		}
	}

	c.Line(4, 8, 4, 72, '|', ColorWhite)
	for y := 1; y < 5; y++ {
		if s.Get(0, y) != '|' {
			t.Errorf("vertical line missing at y=%d", y)
		}
	}
}

func TestCanvasCircle(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewScreenCanvas(s)

	// A tiny circle still plots its center cell
	c.Circle(12, 20, 1, '.', ColorPink)
	if s.Get(1, 1) != '.' {
		t.Error("tiny circle should plot its center cell")
	}

	c.Circle(80, 80, 24, 'o', ColorSky)
	if s.Get(10, 5) != 'o' {
		t.Error("circle should cover its center cell")
	}
	if s.Get(0, 0) == 'o' {
		t.Error("circle should not reach the corner")
	}
}

func TestCanvasFillRect(t *testing.T) {
	s := NewScreen(10, 5)
	c := NewScreenCanvas(s)

	c.FillRect(8, 16, 16, 32, '#', ColorSand)
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 2; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("FillRect missing cell (%d, %d)", x, y)
			}
		}
	}
	if s.Get(3, 1) == '#' || s.Get(1, 3) == '#' {
		t.Error("FillRect should not spill outside its area")
	}
}

func TestCanvasSize(t *testing.T) {
	c := NewScreenCanvas(NewScreen(40, 12))
	w, h := c.Size()
	if w != 320 || h != 192 {
		t.Errorf("Size() = (%f, %f), expected (320, 192)", w, h)
	}
}
