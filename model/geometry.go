package model

import "math"

// Point represents a 2D point in top-left origin page coordinates.
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle in top-left origin page
// coordinates. Y0 is the top edge, Y1 the bottom edge (Y1 >= Y0 for a
// valid rectangle).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from two corner coordinates, normalizing
// them so that X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Contains checks if a point is inside the rectangle. The right and bottom
// edges are exclusive so that adjacent rectangles partition the plane
// without claiming the same point twice.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 &&
		p.Y >= r.Y0 && p.Y < r.Y1
}

// Intersects checks if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X0 < other.X1 && other.X0 < r.X1 &&
		r.Y0 < other.Y1 && other.Y0 < r.Y1
}

// ClampX constrains the horizontal range of the rectangle to [lo, hi].
func (r Rect) ClampX(lo, hi float64) Rect {
	clamped := r
	clamped.X0 = math.Max(lo, math.Min(hi, r.X0))
	clamped.X1 = math.Max(lo, math.Min(hi, r.X1))
	return clamped
}
