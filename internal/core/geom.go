// Package core holds the pieces shared by the simulation and the front ends:
// world geometry, the seeded RNG, the cell buffer and canvas, input frames
// and events. It has no terminal dependencies.
package core

import "math"

// Vec2 is a point or displacement in world pixels.
type Vec2 struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Box is an axis-aligned box in world pixels given by its center and
// half extents.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// BoxAt creates a box of size w x h centered on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{Center: c, HalfW: w / 2, HalfH: h / 2}
}

// Min returns the top-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.HalfW, Y: b.Center.Y - b.HalfH}
}

// Grow returns b enlarged by d on every side.
func (b Box) Grow(d float64) Box {
	return Box{Center: b.Center, HalfW: b.HalfW + d, HalfH: b.HalfH + d}
}

// Contains reports whether p lies strictly inside b.
func (b Box) Contains(p Vec2) bool {
	return math.Abs(p.X-b.Center.X) < b.HalfW && math.Abs(p.Y-b.Center.Y) < b.HalfH
}

// Overlaps reports whether the interiors of b and o intersect. Touching
// edges do not count.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.Center.X-o.Center.X) < b.HalfW+o.HalfW &&
		math.Abs(b.Center.Y-o.Center.Y) < b.HalfH+o.HalfH
}

// ClampF restricts v to [lo, hi]. When lo > hi the result is lo.
func ClampF(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
