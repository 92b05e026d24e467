// Package renderer converts a library symbol into an SVG element tree.
//
// Graphic primitives are folded into the conversion's extents before the
// unit filter runs, so the body outline of hidden units still frames the
// viewport. Pins only count once they are drawn.
package renderer

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
	"github.com/OpenTraceLab/symsvg/pkg/markup"
)

const (
	// DefaultSize is the default width and height of the output canvas.
	DefaultSize = 500
	// DefaultUnit is the unit rendered when none is selected.
	DefaultUnit = 1

	svgNamespace = "http://www.w3.org/2000/svg"
	captionSize  = defaultFontSize
)

// Options control a conversion. Zero values select the defaults.
type Options struct {
	Size         int  // canvas width and height
	Unit         int  // unit to draw; unit 0 primitives are always drawn
	DebugExtents bool // trace the final extents with a rectangle
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Size: DefaultSize, Unit: DefaultUnit}
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Unit <= 0 {
		o.Unit = DefaultUnit
	}
	return o
}

// Render converts sym into an svg root element. An unsupported primitive or
// pin orientation aborts the conversion.
func Render(sym *symbol.Symbol, opts Options) (*markup.Element, error) {
	opts = opts.withDefaults()
	dc := newDrawContext(sym, opts.Unit)

	dc.log.Debug("render symbol", "name", sym.Name, "unit", opts.Unit, "size", opts.Size,
		"draws", len(sym.Draw), "fields", len(sym.Fields))

	var elems []*markup.Element
	for i, d := range sym.Draw {
		out, err := renderDraw(dc, d)
		if err != nil {
			return nil, fmt.Errorf("draw %d: %w", i, err)
		}
		elems = append(elems, out...)
	}
	for _, f := range sym.Fields {
		elems = append(elems, renderField(dc, f)...)
	}

	if opts.DebugExtents && !dc.extents.IsEmpty() {
		elems = append(elems, extentsFrame(dc))
	}

	if dc.extents.MaxUnit > 1 {
		elems = append(elems, unitCaption(dc, opts.Unit))
	}

	size := float64(opts.Size)
	transform := dc.extents.Transform(size)
	dc.log.Debug("extents", "min", dc.extents.Min, "max", dc.extents.Max,
		"maxUnit", dc.extents.MaxUnit, "transform", transform)

	viewport := markup.New("g",
		markup.A("class", "viewport"),
		markup.A("transform", transform),
	).Append(elems...)

	root := markup.New("svg",
		markup.A("xmlns", svgNamespace),
		markup.A("version", "1.1"),
		markup.A("width", opts.Size),
		markup.A("height", opts.Size),
	).Append(viewport)

	return root, nil
}

// WriteSVG renders sym and writes it as an SVG document.
func WriteSVG(w io.Writer, sym *symbol.Symbol, opts Options) error {
	root, err := Render(sym, opts)
	if err != nil {
		return err
	}
	if err := markup.Encode(w, root); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

// extentsFrame outlines the extents accumulated so far.
func extentsFrame(dc *drawContext) *markup.Element {
	ext := dc.extents
	return markup.New("rect",
		markup.A("x", ext.Min.X),
		markup.A("y", ext.Min.Y),
		markup.A("width", ext.Width()),
		markup.A("height", ext.Height()),
		markup.A("style", outlineStyle),
	)
}

// unitCaption labels a multi-unit rendering with "<unit> of <maxUnit>",
// one line above the top-left corner of the extents.
func unitCaption(dc *drawContext, unit int) *markup.Element {
	ext := dc.extents
	if ext.IsEmpty() {
		dc.updateExtents(0, 0)
	}
	dc.updateExtents(ext.Min.X, ext.Min.Y-captionSize)

	return markup.New("text",
		markup.A("x", ext.Min.X),
		markup.A("y", ext.Min.Y),
		markup.A("text-anchor", "start"),
		markup.A("dominant-baseline", "central"),
		markup.A("font-size", captionSize),
	).WithBody(fmt.Sprintf("%d of %d", unit, ext.MaxUnit))
}
