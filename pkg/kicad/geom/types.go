// Package geom provides the coordinate and angle types shared by the symbol
// model, the extents accumulator and the arc math.
package geom

import "math"

// Angle conversion constants.
// Legacy KiCad library symbols store angles in decidegrees (tenths of a degree).
const (
	DecidegreesToDegrees = 0.1
	FullTurn             = 3600 // one full turn in decidegrees
	HalfTurn             = 1800
)

// Position represents a 2D coordinate.
// Symbol records are in mils with Y increasing upward; rendered output uses
// the same unit with Y increasing downward.
type Position struct {
	X float64 `json:"x" yaml:"x" msgpack:"x"`
	Y float64 `json:"y" yaml:"y" msgpack:"y"`
}

// Flip returns the position with Y negated (source frame <-> output frame).
func (p Position) Flip() Position {
	return Position{X: p.X, Y: -p.Y}
}

// Add returns p translated by (dx, dy).
func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// IsNaN reports whether either coordinate is not a number.
func (p Position) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Decidegrees is an angle in tenths of a degree.
type Decidegrees int

// Degrees converts to degrees.
func (a Decidegrees) Degrees() float64 {
	return float64(a) * DecidegreesToDegrees
}

// Radians converts to radians.
func (a Decidegrees) Radians() float64 {
	return float64(a) * math.Pi / HalfTurn
}

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Position // Minimum corner
	Max Position // Maximum corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Position{X: math.Inf(1), Y: math.Inf(1)},
		Max: Position{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty checks if the bounding box is empty
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a position
func (bb *BoundingBox) Expand(pos Position) {
	if pos.X < bb.Min.X {
		bb.Min.X = pos.X
	}
	if pos.Y < bb.Min.Y {
		bb.Min.Y = pos.Y
	}
	if pos.X > bb.Max.X {
		bb.Max.X = pos.X
	}
	if pos.Y > bb.Max.Y {
		bb.Max.Y = pos.Y
	}
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Position {
	return Position{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}
