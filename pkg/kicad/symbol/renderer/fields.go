package renderer

import (
	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
	"github.com/OpenTraceLab/symsvg/pkg/markup"
)

// verticalFieldShift moves vertical field text left of its anchor so the
// rotated text does not overlap the anchor point.
const verticalFieldShift = 30

// fieldAnchor maps a horizontal justification to an SVG text-anchor.
func fieldAnchor(justify string) string {
	switch justify {
	case "L":
		return "start"
	case "R":
		return "end"
	default:
		return "middle"
	}
}

// renderField renders a field label. Fields belong to every unit, so there
// is no unit filtering.
func renderField(dc *drawContext, f symbol.Field) []*markup.Element {
	dc.log.Debug("render field", "index", f.Index, "text", f.Text)

	text := f.Text
	if f.Index == 0 {
		// reference designator placeholder
		text += "?"
	}

	pos := f.Pos.Flip()
	var rotate float64
	if f.TextOrientation == "V" {
		rotate = -90
		pos.X -= verticalFieldShift
	}

	fontSize := f.Size
	if fontSize == 0 {
		fontSize = defaultFontSize
	}
	dc.updateExtents(pos.X, pos.Y-fontSize/2)
	dc.updateExtents(pos.X, pos.Y+fontSize/2)

	return []*markup.Element{
		markup.New("text",
			markup.A("x", pos.X),
			markup.A("y", pos.Y),
			markup.A("style", "dominant-baseline: central; text-anchor: "+fieldAnchor(f.HorizontalJustify)+";"),
			markup.A("font-size", fontSize),
			markup.A("transform", rotateAbout(rotate, pos)),
		).WithBody(text),
	}
}
