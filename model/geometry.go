package model

import "math"

// Point represents a 2D point in page space.
type Point struct {
	X, Y float64
}

// BBox is a rectangle in PDF point units with a top-left origin:
// X0/Top is the upper-left corner, X1/Bottom the lower-right.
type BBox struct {
	X0     float64
	Top    float64
	X1     float64
	Bottom float64
}

// NewBBox creates a bounding box from edge coordinates.
func NewBBox(x0, top, x1, bottom float64) BBox {
	return BBox{X0: x0, Top: top, X1: x1, Bottom: bottom}
}

// Width returns the horizontal extent.
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent.
func (b BBox) Height() float64 {
	return b.Bottom - b.Top
}

// IsValid reports whether the box has positive dimensions.
func (b BBox) IsValid() bool {
	return b.Width() > 0 && b.Height() > 0
}

// Expand grows the box by a margin on all sides.
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		X0:     b.X0 - margin,
		Top:    b.Top - margin,
		X1:     b.X1 + margin,
		Bottom: b.Bottom + margin,
	}
}

// Union returns the smallest box covering both boxes.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0:     math.Min(b.X0, other.X0),
		Top:    math.Min(b.Top, other.Top),
		X1:     math.Max(b.X1, other.X1),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// Line is a straight ruling segment on a page, top-left origin point units.
type Line struct {
	Start Point
	End   Point
}

// Length returns the Euclidean length of the line.
func (l Line) Length() float64 {
	dx := l.End.X - l.Start.X
	dy := l.End.Y - l.Start.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// IsHorizontal reports whether the line is horizontal within tolerance.
func (l Line) IsHorizontal(tol float64) bool {
	return math.Abs(l.End.Y-l.Start.Y) <= tol
}

// IsVertical reports whether the line is vertical within tolerance.
func (l Line) IsVertical(tol float64) bool {
	return math.Abs(l.End.X-l.Start.X) <= tol
}
