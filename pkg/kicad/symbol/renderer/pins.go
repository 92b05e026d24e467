package renderer

import (
	"fmt"

	"github.com/OpenTraceLab/symsvg/pkg/kicad/geom"
	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
	"github.com/OpenTraceLab/symsvg/pkg/markup"
)

// pinLabelGap is the distance between a pin and its labels.
const pinLabelGap = 6

// labelMode says where pin names go relative to the symbol body.
type labelMode int

const (
	// labelsOutside is used when the symbol's pin name offset is 0: name
	// and number both sit beside the pin line.
	labelsOutside labelMode = iota
	// labelsInside puts the name past the inner end of the pin.
	labelsInside
)

func labelModeFor(sym *symbol.Symbol) labelMode {
	if sym.PinNameOffset == 0 {
		return labelsOutside
	}
	return labelsInside
}

// labelRef is the point of the pin a label offset is measured from.
type labelRef int

const (
	refMid labelRef = iota // halfway along the pin
	refEnd                 // the inner end of the pin
)

// labelPlacement positions one label in source coordinates.
type labelPlacement struct {
	ref    labelRef
	dx, dy float64
}

func (lp labelPlacement) resolve(mid, end geom.Position) geom.Position {
	base := mid
	if lp.ref == refEnd {
		base = end
	}
	return base.Add(lp.dx, lp.dy)
}

// pinLayout is the label arrangement for one (mode, orientation) pair.
type pinLayout struct {
	number       labelPlacement
	name         labelPlacement
	nameAnchor   string
	numBaseline  string
	nameBaseline string
	rotate       float64
}

type pinLayoutKey struct {
	mode        labelMode
	orientation symbol.Orientation
}

var pinLayouts = map[pinLayoutKey]pinLayout{
	{labelsOutside, symbol.OrientRight}: {
		number:       labelPlacement{refMid, 0, pinLabelGap},
		name:         labelPlacement{refMid, 0, 2 * pinLabelGap},
		nameAnchor:   "middle",
		numBaseline:  "text-before-edge",
		nameBaseline: "auto",
	},
	{labelsOutside, symbol.OrientLeft}: {
		number:       labelPlacement{refMid, 0, pinLabelGap},
		name:         labelPlacement{refMid, 0, 2 * pinLabelGap},
		nameAnchor:   "middle",
		numBaseline:  "text-before-edge",
		nameBaseline: "auto",
	},
	{labelsOutside, symbol.OrientUp}: {
		number:       labelPlacement{refMid, pinLabelGap, 0},
		name:         labelPlacement{refEnd, 0, pinLabelGap},
		nameAnchor:   "middle",
		numBaseline:  "text-before-edge",
		nameBaseline: "auto",
	},
	{labelsOutside, symbol.OrientDown}: {
		number:       labelPlacement{refMid, pinLabelGap, 0},
		name:         labelPlacement{refEnd, 0, -pinLabelGap},
		nameAnchor:   "end",
		numBaseline:  "text-before-edge",
		nameBaseline: "auto",
	},
	{labelsInside, symbol.OrientRight}: {
		number:       labelPlacement{refMid, 0, pinLabelGap},
		name:         labelPlacement{refEnd, pinLabelGap, 0},
		nameAnchor:   "start",
		numBaseline:  "auto",
		nameBaseline: "central",
	},
	{labelsInside, symbol.OrientLeft}: {
		number:       labelPlacement{refMid, 0, pinLabelGap},
		name:         labelPlacement{refEnd, -pinLabelGap, 0},
		nameAnchor:   "end",
		numBaseline:  "auto",
		nameBaseline: "central",
	},
	{labelsInside, symbol.OrientUp}: {
		number:       labelPlacement{refMid, -pinLabelGap, 0},
		name:         labelPlacement{refEnd, 0, pinLabelGap},
		nameAnchor:   "start",
		numBaseline:  "auto",
		nameBaseline: "central",
		rotate:       -90,
	},
	{labelsInside, symbol.OrientDown}: {
		number:       labelPlacement{refMid, -pinLabelGap, 0},
		name:         labelPlacement{refEnd, 0, -pinLabelGap},
		nameAnchor:   "end",
		numBaseline:  "auto",
		nameBaseline: "central",
		rotate:       -90,
	},
}

// pinEnd returns the inner end of a pin: its position moved by its length
// in the direction of its orientation.
func pinEnd(p symbol.Pin) (geom.Position, error) {
	switch p.Orientation {
	case symbol.OrientRight:
		return p.Pos.Add(p.Length, 0), nil
	case symbol.OrientLeft:
		return p.Pos.Add(-p.Length, 0), nil
	case symbol.OrientUp:
		return p.Pos.Add(0, p.Length), nil
	case symbol.OrientDown:
		return p.Pos.Add(0, -p.Length), nil
	default:
		return geom.Position{}, fmt.Errorf("%w '%s' on pin %s", ErrUnsupportedOrientation, p.Orientation, p.Number)
	}
}

// renderPin renders the pin line and, as enabled on the symbol, its name
// and number labels.
func renderPin(dc *drawContext, p symbol.Pin) ([]*markup.Element, error) {
	dc.log.Debug("render pin", "number", p.Number, "name", p.Name, "orientation", p.Orientation)

	// Every pin counts toward the number of units, drawn or not.
	dc.updateMaxUnit(p.Unit)

	if !dc.isUnitSelected(p.Common) {
		return nil, nil
	}

	end, err := pinEnd(p)
	if err != nil {
		return nil, err
	}
	layout, ok := pinLayouts[pinLayoutKey{labelModeFor(dc.symbol), p.Orientation}]
	if !ok {
		return nil, fmt.Errorf("%w '%s' on pin %s", ErrUnsupportedOrientation, p.Orientation, p.Number)
	}

	start := p.Pos.Flip()
	stop := end.Flip()
	dc.updateExtentsPos(start)
	dc.updateExtentsPos(stop)

	elems := []*markup.Element{
		markup.New("line",
			markup.A("x1", start.X),
			markup.A("y1", start.Y),
			markup.A("x2", stop.X),
			markup.A("y2", stop.Y),
			markup.A("style", strokeStyle),
		),
	}

	mid := geom.Position{X: (p.Pos.X + end.X) / 2, Y: (p.Pos.Y + end.Y) / 2}

	if dc.symbol.DrawName {
		at := layout.name.resolve(mid, end).Flip()
		elems = append(elems, pinLabel(at, layout.nameBaseline, layout.nameAnchor, layout.rotate, p.Name))
	}
	if dc.symbol.DrawNums {
		at := layout.number.resolve(mid, end).Flip()
		elems = append(elems, pinLabel(at, layout.numBaseline, "middle", layout.rotate, p.Number))
	}

	return elems, nil
}

func pinLabel(at geom.Position, baseline, anchor string, rotate float64, body string) *markup.Element {
	return markup.New("text",
		markup.A("x", at.X),
		markup.A("y", at.Y),
		markup.A("dominant-baseline", baseline),
		markup.A("text-anchor", anchor),
		markup.A("font-size", defaultFontSize),
		markup.A("transform", rotateAbout(rotate, at)),
	).WithBody(body)
}

// rotateAbout formats an SVG rotation pivoted on p.
func rotateAbout(degrees float64, p geom.Position) string {
	return "rotate(" + markup.Num(degrees) + ", " + markup.Num(p.X) + ", " + markup.Num(p.Y) + ")"
}
