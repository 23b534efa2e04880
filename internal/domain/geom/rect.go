// Package geom provides axis-aligned rectangle primitives used for collision.
//
// Coordinates are top-left origin with y growing downward (screen space).
package geom

// Vec is a 2D vector (position delta or velocity).
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
// X, Y is the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
// Empty rectangles never overlap anything.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Overlaps reports whether a and b share interior area.
// Edges that only touch do not count.
func Overlaps(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// Overlaps is the method form of Overlaps.
func (r Rect) Overlaps(other Rect) bool {
	return Overlaps(r, other)
}
