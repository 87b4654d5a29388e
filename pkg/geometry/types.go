// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Rect represents a detector bounding box in image pixel coordinates,
// stored as the two corners (X1,Y1)-(X2,Y2).
type Rect struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// NewRect creates a new Rect.
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the box width.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the box height.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Area returns the box area, or 0 for a degenerate box.
func (r Rect) Area() float64 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Clip constrains the box to an image of the given dimensions.
func (r Rect) Clip(imageWidth, imageHeight int) Rect {
	w := float64(imageWidth)
	h := float64(imageHeight)
	return Rect{
		X1: math.Max(0, math.Min(r.X1, w)),
		Y1: math.Max(0, math.Min(r.Y1, h)),
		X2: math.Max(0, math.Min(r.X2, w)),
		Y2: math.Max(0, math.Min(r.Y2, h)),
	}
}

// Round converts to integer pixel coordinates.
func (r Rect) Round() RectInt {
	return RectInt{
		X1: int(math.Round(r.X1)),
		Y1: int(math.Round(r.Y1)),
		X2: int(math.Round(r.X2)),
		Y2: int(math.Round(r.Y2)),
	}
}

// Intersects returns true if this box overlaps another.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 < other.X2 && r.X2 > other.X1 &&
		r.Y1 < other.Y2 && r.Y2 > other.Y1
}

// RectInt is a Rect with integer pixel coordinates.
type RectInt struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Width returns the box width.
func (r RectInt) Width() int {
	return r.X2 - r.X1
}

// Height returns the box height.
func (r RectInt) Height() int {
	return r.Y2 - r.Y1
}

// Empty returns true if the box has no area.
func (r RectInt) Empty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// ToFloat converts to Rect.
func (r RectInt) ToFloat() Rect {
	return Rect{X1: float64(r.X1), Y1: float64(r.Y1), X2: float64(r.X2), Y2: float64(r.Y2)}
}
