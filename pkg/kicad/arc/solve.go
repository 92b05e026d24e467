package arc

import (
	"math"

	"github.com/OpenTraceLab/symsvg/pkg/kicad/geom"
)

// Params are the values of an SVG elliptical-arc path command
// "M X0 Y0 A RX RY Phi LargeArc Sweep X1 Y1".
type Params struct {
	X0, Y0   float64
	RX, RY   float64
	Phi      float64
	LargeArc int
	Sweep    int
	X1, Y1   float64
}

// Solve converts a circular arc given by its center and two points on the
// circle into SVG arc parameters. All points are in output coordinates
// (Y down). The arc runs from start to end counter-clockwise in the symbol
// frame, which is the negative angular direction once Y is flipped, so the
// sweep flag is always 0.
func Solve(center, start, end geom.Position) Params {
	r := math.Hypot(start.X-center.X, start.Y-center.Y)

	a0 := math.Atan2(start.Y-center.Y, start.X-center.X)
	a1 := math.Atan2(end.Y-center.Y, end.X-center.X)

	// angle travelled going from a0 to a1 in the negative direction
	span := math.Mod(a0-a1, 2*math.Pi)
	if span < 0 {
		span += 2 * math.Pi
	}

	p := Params{
		X0: start.X,
		Y0: start.Y,
		RX: r,
		RY: r,
		X1: end.X,
		Y1: end.Y,
	}
	if span > math.Pi {
		p.LargeArc = 1
	}
	return p
}
