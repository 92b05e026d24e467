package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/OpenTraceLab/symsvg/pkg/kicad/arc"
	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
	"github.com/OpenTraceLab/symsvg/pkg/markup"
)

const (
	strokeStyle     = "stroke: rgb(0,0,0); stroke-width: 2"
	outlineStyle    = "fill-opacity: 0; stroke: rgb(0,0,0); stroke-width: 2;"
	solidFill       = "rgb(0,0,0)"
	defaultFontSize = 55
)

// renderDraw dispatches a draw primitive to its renderer. Each renderer
// updates the extents before applying the unit filter, so geometry of
// units that are not drawn still frames the viewport.
func renderDraw(dc *drawContext, d symbol.Draw) ([]*markup.Element, error) {
	switch draw := d.(type) {
	case symbol.Square:
		return renderSquare(dc, draw), nil
	case symbol.Polyline:
		return renderPolyline(dc, draw), nil
	case symbol.Pin:
		return renderPin(dc, draw)
	case symbol.Circle:
		return renderCircle(dc, draw), nil
	case symbol.Arc:
		return renderArc(dc, draw), nil
	case symbol.Text:
		return renderText(dc, draw), nil
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnsupportedDraw, d.Kind())
	}
}

// renderSquare renders a rectangle from two opposite corners
func renderSquare(dc *drawContext, sq symbol.Square) []*markup.Element {
	dc.log.Debug("render square", "pos", sq.Pos, "end", sq.End)

	dc.updateExtentsPos(sq.Pos.Flip())
	dc.updateExtentsPos(sq.End.Flip())

	if !dc.isUnitSelected(sq.Common) {
		return nil
	}

	return []*markup.Element{
		markup.New("rect",
			markup.A("x", math.Min(sq.Pos.X, sq.End.X)),
			markup.A("y", -math.Max(sq.Pos.Y, sq.End.Y)),
			markup.A("width", math.Abs(sq.End.X-sq.Pos.X)),
			markup.A("height", math.Abs(sq.End.Y-sq.Pos.Y)),
			markup.A("style", outlineStyle),
		),
	}
}

// renderPolyline renders an open polyline, filled solid for SHAPE fill
func renderPolyline(dc *drawContext, pl symbol.Polyline) []*markup.Element {
	dc.log.Debug("render polyline", "points", len(pl.Points), "fill", pl.Fill)

	points := make([]string, 0, len(pl.Points))
	for _, pt := range pl.Points {
		out := pt.Flip()
		dc.updateExtentsPos(out)
		points = append(points, markup.Num(out.X)+","+markup.Num(out.Y))
	}

	if !dc.isUnitSelected(pl.Common) {
		return nil
	}

	fill := "none"
	if pl.Fill == symbol.FillShape {
		fill = solidFill
	}

	return []*markup.Element{
		markup.New("polyline",
			markup.A("points", strings.Join(points, " ")),
			markup.A("fill", fill),
			markup.A("style", strokeStyle),
		),
	}
}

// renderCircle renders an unfilled circle
func renderCircle(dc *drawContext, c symbol.Circle) []*markup.Element {
	dc.log.Debug("render circle", "pos", c.Pos, "radius", c.Radius)

	center := c.Pos.Flip()
	dc.updateExtents(center.X-c.Radius, center.Y-c.Radius)
	dc.updateExtents(center.X+c.Radius, center.Y+c.Radius)

	if !dc.isUnitSelected(c.Common) {
		return nil
	}

	return []*markup.Element{
		markup.New("circle",
			markup.A("cx", center.X),
			markup.A("cy", center.Y),
			markup.A("r", c.Radius),
			markup.A("fill", "none"),
			markup.A("style", strokeStyle),
		),
	}
}

// renderArc renders an arc as a single elliptical-arc path. The record's
// endpoints are used as given; T1 and T2 only decide whether they are
// exchanged.
func renderArc(dc *drawContext, a symbol.Arc) []*markup.Element {
	dc.log.Debug("render arc", "pos", a.Pos, "radius", a.Radius, "from", a.T1.Degrees(), "to", a.T2.Degrees())

	start := a.Start.Flip()
	end := a.End.Flip()
	center := a.Pos.Flip()

	if arc.ShouldSwap(a.T1, a.T2) {
		dc.log.Debug("swapping arc start and end")
		start, end = end, start
	}

	// Conservative: the radius box around each endpoint, not the exact arc
	// bounds.
	r := a.Radius
	dc.updateExtentsPos(start)
	dc.updateExtentsPos(end)
	dc.updateExtents(start.X-r, start.Y-r)
	dc.updateExtents(start.X+r, start.Y+r)
	dc.updateExtents(end.X-r, end.Y-r)
	dc.updateExtents(end.X+r, end.Y+r)

	if !dc.isUnitSelected(a.Common) {
		return nil
	}

	p := arc.Solve(center, start, end)
	d := fmt.Sprintf("M %s %s A %s %s %s %d %d %s %s",
		markup.Num(p.X0), markup.Num(p.Y0),
		markup.Num(p.RX), markup.Num(p.RY), markup.Num(p.Phi),
		p.LargeArc, p.Sweep,
		markup.Num(p.X1), markup.Num(p.Y1))

	return []*markup.Element{
		markup.New("path",
			markup.A("d", d),
			markup.A("fill", "none"),
			markup.A("style", strokeStyle),
		),
	}
}

// renderText renders free graphic text centered on its position
func renderText(dc *drawContext, txt symbol.Text) []*markup.Element {
	dc.log.Debug("render text", "pos", txt.Pos, "text", txt.Text)

	pos := txt.Pos.Flip()
	dc.updateExtentsPos(pos)

	if !dc.isUnitSelected(txt.Common) {
		return nil
	}

	return []*markup.Element{
		markup.New("text",
			markup.A("x", pos.X),
			markup.A("y", pos.Y),
			markup.A("text-anchor", "middle"),
			markup.A("dominant-baseline", "central"),
			markup.A("font-size", defaultFontSize),
		).WithBody(txt.Text),
	}
}
