// Package symbol models a KiCad legacy library symbol as a structured record:
// draw primitives plus labeled fields.
package symbol

import (
	"github.com/OpenTraceLab/symsvg/pkg/kicad/geom"
)

// Re-export shared types from geom for convenience
type Position = geom.Position
type Decidegrees = geom.Decidegrees

// DefaultPinNameOffset is the pin name offset KiCad assigns when a symbol
// does not specify one.
const DefaultPinNameOffset = 40

// Symbol is a library symbol definition
type Symbol struct {
	Name          string  // Symbol name (e.g., "74LS00")
	Reference     string  // Reference prefix (e.g., "U")
	DrawNums      bool    // Draw pin numbers
	DrawName      bool    // Draw pin names
	PinNameOffset float64 // 0 = pin names drawn outside the body
	Draw          []Draw  // Draw primitives in file order
	Fields        []Field // Fields in file order
}

// Field is a positioned text label attached to the symbol.
// Index 0 is the reference designator.
type Field struct {
	Index             int      `json:"index" yaml:"index" msgpack:"index"`
	Text              string   `json:"text" yaml:"text" msgpack:"text"`
	Pos               Position `json:"pos" yaml:"pos" msgpack:"pos"`
	Size              float64  `json:"size,omitempty" yaml:"size,omitempty" msgpack:"size,omitempty"`
	TextOrientation   string   `json:"textOrientation" yaml:"textOrientation" msgpack:"textOrientation"`     // H or V
	TextVisible       string   `json:"textVisible,omitempty" yaml:"textVisible,omitempty" msgpack:"textVisible,omitempty"`
	HorizontalJustify string   `json:"horizonalJustify" yaml:"horizonalJustify" msgpack:"horizonalJustify"` // L, C or R
	VerticalJustify   string   `json:"verticalJustify,omitempty" yaml:"verticalJustify,omitempty" msgpack:"verticalJustify,omitempty"`
}

// Common holds the attributes every draw primitive carries.
type Common struct {
	Unit    int // 0 = shared by all units
	Convert int // 0 or 1 = normal body style, otherwise a de Morgan alternate
}

// Base returns the common attributes.
func (c Common) Base() Common { return c }

// Draw is one drawable primitive. The set of implementations is closed:
// Square, Polyline, Pin, Circle, Arc, Text and Unknown.
type Draw interface {
	Base() Common
	// Kind returns the record tag ("square", "pin", ...).
	Kind() string
	isDraw()
}

// Square is a rectangle given by two opposite corners.
type Square struct {
	Common
	Pos   Position
	End   Position
	Width float64 // Line width
	Fill  string
}

// Polyline is an open or filled sequence of points.
type Polyline struct {
	Common
	Points []Position
	Width  float64
	Fill   string // FillShape fills the interior
}

// Fill modes of legacy symbol graphics.
const (
	FillNone  = "N"
	FillShape = "SHAPE"
)

// Orientation is the direction a pin extends from its connection point.
type Orientation string

// Pin orientations.
const (
	OrientRight Orientation = "R"
	OrientLeft  Orientation = "L"
	OrientUp    Orientation = "U"
	OrientDown  Orientation = "D"
)

// Pin is a symbol pin. Pos is the connection point.
type Pin struct {
	Common
	Name           string
	Number         string
	Pos            Position
	Length         float64
	Orientation    Orientation
	NameTextSize   float64
	NumberTextSize float64
	PinType        string // Electrical type (I, O, B, P, W, ...)
}

// Circle is a circle given by center and radius.
type Circle struct {
	Common
	Pos    Position
	Radius float64
	Width  float64
	Fill   string
}

// Arc is a circular arc. T1 and T2 are the start and end angles; Start and
// End are the matching endpoints as stored in the record.
type Arc struct {
	Common
	Pos    Position
	Radius float64
	T1     Decidegrees
	T2     Decidegrees
	Start  Position
	End    Position
	Width  float64
	Fill   string
}

// Text is free graphic text.
type Text struct {
	Common
	Pos               Position
	Text              string
	Angle             Decidegrees
	HorizontalJustify string
	VerticalJustify   string
}

// Unknown keeps a record whose tag is not a supported primitive so that
// rendering can reject it.
type Unknown struct {
	Common
	Type string
}

func (Square) Kind() string   { return "square" }
func (Polyline) Kind() string { return "polyline" }
func (Pin) Kind() string      { return "pin" }
func (Circle) Kind() string   { return "circle" }
func (Arc) Kind() string      { return "arc" }
func (Text) Kind() string     { return "text" }
func (u Unknown) Kind() string {
	return u.Type
}

func (Square) isDraw()   {}
func (Polyline) isDraw() {}
func (Pin) isDraw()      {}
func (Circle) isDraw()   {}
func (Arc) isDraw()      {}
func (Text) isDraw()     {}
func (Unknown) isDraw()  {}

// Pins returns every pin of the symbol, across all units.
func (s *Symbol) Pins() []Pin {
	var pins []Pin
	for _, d := range s.Draw {
		if p, ok := d.(Pin); ok {
			pins = append(pins, p)
		}
	}
	return pins
}

// MaxUnit returns the highest unit index carried by a pin. Pins are the
// only primitives that determine the unit count.
func (s *Symbol) MaxUnit() int {
	maxUnit := 0
	for _, p := range s.Pins() {
		if p.Unit > maxUnit {
			maxUnit = p.Unit
		}
	}
	return maxUnit
}

// GetField returns the field with the given index, or nil.
func (s *Symbol) GetField(index int) *Field {
	for i := range s.Fields {
		if s.Fields[i].Index == index {
			return &s.Fields[i]
		}
	}
	return nil
}

// CountByKind returns how many primitives of each kind the symbol has.
func (s *Symbol) CountByKind() map[string]int {
	counts := make(map[string]int)
	for _, d := range s.Draw {
		counts[d.Kind()]++
	}
	return counts
}
