package pix

import "fmt"

// Rect is an axis-aligned integer rectangle anchored at its top-left
// corner. It covers the half-open pixel range [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// RectXYWH is a convenience function to create a Rect.
func RectXYWH(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersect returns the largest rectangle contained in both r and s.
// The result is empty if the rectangles do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.W, s.X+s.W)
	y1 := min(r.Y+r.H, s.Y+s.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// String returns a readable representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d%+d%+d", r.W, r.H, r.X, r.Y)
}

// Shape is a rectangle tagged with a fill color. It is the only output
// type of the brush engine and the flood fill; the caller composites
// shapes into its pixel buffer, typically with [Pixmap.Apply].
type Shape struct {
	Rect  Rect
	Color RGBA8
}
