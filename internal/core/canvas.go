package core

import "math"

// Cell size in world pixels. A terminal cell is roughly twice as tall as it
// is wide, so the world keeps square pixels by using 8x16 cells.
const (
	CellW = 8.0
	CellH = 16.0
)

// Canvas is the abstract 2D drawing surface games render to.
// Coordinates are world pixels; implementations decide how pixels map to
// the physical display. Drawing never fails: anything outside the surface is
// clipped.
type Canvas interface {
	// Size returns the drawable area in world pixels.
	Size() (w, h float64)
	Plot(x, y float64, r rune, c Color)
	// Text draws text starting at (x, y).
	Text(x, y float64, text string, c Color)
	// TextCentered draws text centered horizontally on x.
	TextCentered(x, y float64, text string, c Color)
	Line(x0, y0, x1, y1 float64, r rune, c Color)
	FillRect(x, y, w, h float64, r rune, c Color)
	Circle(x, y, radius float64, r rune, c Color)
	Ring(x, y, radius float64, r rune, c Color)
	SetBackground(c Color)
}

// ScreenCanvas adapts a Screen to the Canvas interface.
type ScreenCanvas struct {
	screen *Screen
}

// NewScreenCanvas wraps dst.
func NewScreenCanvas(dst *Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: dst}
}

// WorldSize returns the world dimensions in pixels for a screen of w x h cells.
func WorldSize(w, h int) (float64, float64) {
	return float64(w) * CellW, float64(h) * CellH
}

// ToCell converts world pixels to cell coordinates.
func ToCell(x, y float64) (int, int) {
	return int(math.Floor(x / CellW)), int(math.Floor(y / CellH))
}

// Size returns the drawable area in world pixels.
func (c *ScreenCanvas) Size() (float64, float64) {
	return WorldSize(c.screen.Width(), c.screen.Height())
}

// Plot draws a single rune at the cell containing (x, y).
func (c *ScreenCanvas) Plot(x, y float64, r rune, col Color) {
	cx, cy := ToCell(x, y)
	c.screen.SetColored(cx, cy, r, col)
}

// Text draws text starting at (x, y).
func (c *ScreenCanvas) Text(x, y float64, text string, col Color) {
	cx, cy := ToCell(x, y)
	c.screen.DrawTextColored(cx, cy, text, col)
}

// TextCentered draws text centered horizontally on x.
func (c *ScreenCanvas) TextCentered(x, y float64, text string, col Color) {
	cx, cy := ToCell(x, y)
	c.screen.DrawTextColored(cx-len([]rune(text))/2, cy, text, col)
}

// Line draws a line between two points using Bresenham in cell space.
func (c *ScreenCanvas) Line(x0, y0, x1, y1 float64, r rune, col Color) {
	ax, ay := ToCell(x0, y0)
	bx, by := ToCell(x1, y1)

	dx := absInt(bx - ax)
	dy := -absInt(by - ay)
	sx, sy := 1, 1
	if ax > bx {
		sx = -1
	}
	if ay > by {
		sy = -1
	}
	e := dx + dy
	for {
		c.screen.SetColored(ax, ay, r, col)
		if ax == bx && ay == by {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ax += sx
		}
		if e2 <= dx {
			e += dx
			ay += sy
		}
	}
}

// FillRect fills every cell covered by the rectangle.
func (c *ScreenCanvas) FillRect(x, y, w, h float64, r rune, col Color) {
	x0, y0 := ToCell(x, y)
	x1, y1 := ToCell(x+w-1, y+h-1)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			c.screen.SetColored(cx, cy, r, col)
		}
	}
}

// Circle fills every cell whose center lies inside the circle.
// Circles smaller than a cell still plot their center cell.
func (c *ScreenCanvas) Circle(x, y, radius float64, r rune, col Color) {
	c.Plot(x, y, r, col)
	c.eachCell(x, y, radius, func(cx, cy int, d float64) {
		if d <= radius {
			c.screen.SetColored(cx, cy, r, col)
		}
	})
}

// Ring draws the cells close to the circle's edge.
func (c *ScreenCanvas) Ring(x, y, radius float64, r rune, col Color) {
	band := CellW * 0.75
	c.eachCell(x, y, radius+band, func(cx, cy int, d float64) {
		if math.Abs(d-radius) <= band {
			c.screen.SetColored(cx, cy, r, col)
		}
	})
}

// SetBackground tints the whole frame.
func (c *ScreenCanvas) SetBackground(col Color) {
	c.screen.SetBackground(col)
}

func (c *ScreenCanvas) eachCell(x, y, radius float64, fn func(cx, cy int, d float64)) {
	x0, y0 := ToCell(x-radius, y-radius)
	x1, y1 := ToCell(x+radius, y+radius)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			px := (float64(cx) + 0.5) * CellW
			py := (float64(cy) + 0.5) * CellH
			fn(cx, cy, math.Hypot(px-x, py-y))
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
