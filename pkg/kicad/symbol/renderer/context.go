package renderer

import (
	"log/slog"

	"github.com/OpenTraceLab/symsvg/internal/logging"
	"github.com/OpenTraceLab/symsvg/pkg/kicad/extents"
	"github.com/OpenTraceLab/symsvg/pkg/kicad/geom"
	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
)

// drawContext is the per-conversion state threaded through every
// primitive renderer. It is never shared between conversions.
type drawContext struct {
	symbol  *symbol.Symbol
	extents *extents.Extents
	unit    int
	log     *slog.Logger
}

func newDrawContext(sym *symbol.Symbol, unit int) *drawContext {
	return &drawContext{
		symbol:  sym,
		extents: extents.New(),
		unit:    unit,
		log:     logging.Logger(),
	}
}

// updateExtents folds an output coordinate into the extents. Coordinates
// that are not numbers are skipped here but still rendered.
func (dc *drawContext) updateExtents(x, y float64) {
	if (geom.Position{X: x, Y: y}).IsNaN() {
		dc.log.Warn("skipping non-numeric coordinate for extents", "x", x, "y", y)
		return
	}
	dc.extents.Update(x, y)
}

func (dc *drawContext) updateExtentsPos(p geom.Position) {
	dc.updateExtents(p.X, p.Y)
}

func (dc *drawContext) updateMaxUnit(unit int) {
	dc.extents.UpdateMaxUnit(unit)
}

// isUnitSelected reports whether a primitive belongs to the rendered unit
// in the normal body style.
func (dc *drawContext) isUnitSelected(c symbol.Common) bool {
	return IsUnitSelected(c, dc.unit)
}

// IsUnitSelected reports whether a primitive with common attributes c is
// drawn when rendering unit. Alternate (de Morgan) body styles are never
// selected; unit 0 belongs to every unit.
func IsUnitSelected(c symbol.Common, unit int) bool {
	if c.Convert != 0 && c.Convert != 1 {
		logging.Logger().Debug("skip primitive: alternate body style", "convert", c.Convert)
		return false
	}
	if c.Unit != 0 && c.Unit != unit {
		logging.Logger().Debug("skip primitive: other unit", "unit", c.Unit, "selected", unit)
		return false
	}
	return true
}
