// Package arc holds the angle bookkeeping and the center/start/end to
// elliptical-arc conversion used when emitting symbol arcs as SVG paths.
//
// Angles stay in decidegrees throughout; the 1800 and 3600 thresholds are
// defined in that unit.
package arc

import (
	"math"

	"github.com/OpenTraceLab/symsvg/pkg/kicad/geom"
)

// transform is a 2x2 orientation matrix in the KiCad TRANSFORM layout:
// a source vector (x, y) maps to (x*X1 + y*Y1, x*X2 + y*Y2).
type transform struct {
	X1, Y1 float64
	X2, Y2 float64
}

// identity is the orientation of a library symbol in its own frame, where
// angle 0 lies along +X and angles grow counter-clockwise.
var identity = transform{X1: 1, Y1: 0, X2: 0, Y2: 1}

// NormalizePos folds an angle into [0, 3600).
func NormalizePos(a geom.Decidegrees) geom.Decidegrees {
	for a < 0 {
		a += geom.FullTurn
	}
	for a >= geom.FullTurn {
		a -= geom.FullTurn
	}
	return a
}

// mapAngle rotates a through the transform and rounds to the nearest
// decidegree.
func (t transform) mapAngle(a geom.Decidegrees) geom.Decidegrees {
	rad := a.Radians()
	x, y := math.Cos(rad), math.Sin(rad)
	mx := x*t.X1 + y*t.Y1
	my := x*t.X2 + y*t.Y2
	return geom.Decidegrees(math.Round(math.Atan2(my, mx) * geom.HalfTurn / math.Pi))
}

// mapAngles maps the start/end angles of an arc through t and orders them so
// the arc runs counter-clockwise from t1 to t2 over at most 180 degrees.
// swapped reports that the caller must exchange the arc endpoints.
//
// A span of 180 degrees or more is shrunk by one decidegree on each side
// while mapping so an exact half turn does not flip on rounding. The shrink
// is undone on the returned angles.
func (t transform) mapAngles(t1, t2 geom.Decidegrees) (a1, a2 geom.Decidegrees, swapped bool) {
	wide := t2-t1 >= geom.HalfTurn
	if wide {
		t1++
		t2--
	}

	a1 = NormalizePos(t.mapAngle(t1))
	a2 = NormalizePos(t.mapAngle(t2))
	if a2 < a1 {
		a2 += geom.FullTurn
	}

	if a2-a1 > geom.HalfTurn {
		a1, a2 = a2, a1
		a1 = NormalizePos(a1)
		a2 = NormalizePos(a2)
		if a2 < a1 {
			a2 += geom.FullTurn
		}
		swapped = true
	}

	if wide {
		if swapped {
			a1++
			a2--
		} else {
			a1--
			a2++
		}
	}

	return a1, a2, swapped
}

// ShouldSwap reports whether an arc given by start/end angles t1, t2 must
// have its endpoints exchanged to be drawn the intended way.
//
// Angles are mapped in the symbol's own frame. The mirrored (1, 0, 0, -1)
// basis used for placed schematic symbols would swap every short
// counter-clockwise span, so a (0, 90) quarter arc would be drawn from its
// end; in the library frame it keeps its order.
func ShouldSwap(t1, t2 geom.Decidegrees) bool {
	_, _, swapped := identity.mapAngles(t1, t2)
	return swapped
}
