// Package core provides the small value types shared by the simulation, the
// terminal host and the replay tooling. It has no dependency on Bubble Tea so
// the runner can be stepped headless from tests.
package core

// Vec3 is a point in track space. X is lateral, Y is height above the
// ground and Z is the scroll axis (decreasing as the run progresses).
type Vec3 struct {
	X, Y, Z float64
}

// Rect represents an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp moves a toward b by factor t (0 keeps a, 1 jumps to b).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
