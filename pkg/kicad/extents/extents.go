// Package extents accumulates the bounding box of rendered symbol geometry
// and derives the viewport transform that frames it on a square canvas.
package extents

import (
	"math"
	"strconv"

	"github.com/OpenTraceLab/symsvg/pkg/kicad/geom"
)

// FitRatio is the share of the canvas the content occupies after fitting.
// The remainder is split evenly as a margin on each side.
const FitRatio = 0.9

// Extents tracks the observed min/max output coordinates and the highest
// unit index seen. One instance belongs to exactly one conversion.
type Extents struct {
	geom.BoundingBox
	MaxUnit int
}

// New creates empty extents.
func New() *Extents {
	return &Extents{BoundingBox: geom.NewBoundingBox()}
}

// Update folds (x, y) into the bounding box. Coordinates that are not
// numbers are ignored.
func (e *Extents) Update(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	e.Expand(geom.Position{X: x, Y: y})
}

// UpdateMaxUnit raises MaxUnit to unit if it is larger. It never decreases.
func (e *Extents) UpdateMaxUnit(unit int) {
	if unit > e.MaxUnit {
		e.MaxUnit = unit
	}
}

// Fit returns the translation and uniform scale that center the extents on a
// size x size canvas, leaving a (1-FitRatio)/2 margin on every side.
// Empty or single-point extents are centered at scale 1.
func (e *Extents) Fit(size float64) (tx, ty, scale float64) {
	half := size / 2
	if e.IsEmpty() {
		return half, half, 1
	}

	center := e.Center()
	span := math.Max(e.Width(), e.Height())
	scale = 1
	if span > 0 {
		scale = size * FitRatio / span
	}

	return half - center.X*scale, half - center.Y*scale, scale
}

// Transform returns the SVG transform attribute produced by Fit.
func (e *Extents) Transform(size float64) string {
	tx, ty, scale := e.Fit(size)
	return "translate(" + formatNum(tx) + "," + formatNum(ty) + ") scale(" + formatNum(scale) + ")"
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
