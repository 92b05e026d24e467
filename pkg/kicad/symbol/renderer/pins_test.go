package renderer

import (
	"errors"
	"testing"

	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
)

func testPin(orientation symbol.Orientation) symbol.Pin {
	return symbol.Pin{
		Common:      symbol.Common{Unit: 1, Convert: 1},
		Name:        "A",
		Number:      "1",
		Length:      100,
		Orientation: orientation,
	}
}

func TestPinLabelLayout(t *testing.T) {
	type label struct {
		x, y      string
		anchor    string
		baseline  string
		transform string
	}
	tests := []struct {
		name          string
		pinNameOffset float64
		orientation   symbol.Orientation
		line          [4]string
		pinName       label
		pinNumber     label
	}{
		{
			"outside right", 0, symbol.OrientRight,
			[4]string{"0", "0", "100", "0"},
			label{"50", "-12", "middle", "auto", "rotate(0, 50, -12)"},
			label{"50", "-6", "middle", "text-before-edge", "rotate(0, 50, -6)"},
		},
		{
			"outside left", 0, symbol.OrientLeft,
			[4]string{"0", "0", "-100", "0"},
			label{"-50", "-12", "middle", "auto", "rotate(0, -50, -12)"},
			label{"-50", "-6", "middle", "text-before-edge", "rotate(0, -50, -6)"},
		},
		{
			"outside up", 0, symbol.OrientUp,
			[4]string{"0", "0", "0", "-100"},
			label{"0", "-106", "middle", "auto", "rotate(0, 0, -106)"},
			label{"6", "-50", "middle", "text-before-edge", "rotate(0, 6, -50)"},
		},
		{
			"outside down", 0, symbol.OrientDown,
			[4]string{"0", "0", "0", "100"},
			label{"0", "106", "end", "auto", "rotate(0, 0, 106)"},
			label{"6", "50", "middle", "text-before-edge", "rotate(0, 6, 50)"},
		},
		{
			"inside right", 40, symbol.OrientRight,
			[4]string{"0", "0", "100", "0"},
			label{"106", "0", "start", "central", "rotate(0, 106, 0)"},
			label{"50", "-6", "middle", "auto", "rotate(0, 50, -6)"},
		},
		{
			"inside left", 40, symbol.OrientLeft,
			[4]string{"0", "0", "-100", "0"},
			label{"-106", "0", "end", "central", "rotate(0, -106, 0)"},
			label{"-50", "-6", "middle", "auto", "rotate(0, -50, -6)"},
		},
		{
			"inside up", 40, symbol.OrientUp,
			[4]string{"0", "0", "0", "-100"},
			label{"0", "-106", "start", "central", "rotate(-90, 0, -106)"},
			label{"-6", "-50", "middle", "auto", "rotate(-90, -6, -50)"},
		},
		{
			"inside down", 40, symbol.OrientDown,
			[4]string{"0", "0", "0", "100"},
			label{"0", "106", "end", "central", "rotate(-90, 0, 106)"},
			label{"-6", "50", "middle", "auto", "rotate(-90, -6, 50)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym := &symbol.Symbol{DrawName: true, DrawNums: true, PinNameOffset: tt.pinNameOffset}
			dc := newDrawContext(sym, 1)

			elems, err := renderPin(dc, testPin(tt.orientation))
			if err != nil {
				t.Fatalf("renderPin failed: %v", err)
			}
			if len(elems) != 3 {
				t.Fatalf("Expected line, name and number, got %d elements", len(elems))
			}

			line := elems[0]
			if line.Name != "line" {
				t.Fatalf("Expected first element to be a line, got %s", line.Name)
			}
			for i, key := range []string{"x1", "y1", "x2", "y2"} {
				if got := line.GetString(key); got != tt.line[i] {
					t.Errorf("Expected line %s=%s, got %s", key, tt.line[i], got)
				}
			}

			check := func(what string, want label, got map[string]string) {
				if got["x"] != want.x || got["y"] != want.y {
					t.Errorf("Expected %s at (%s,%s), got (%s,%s)", what, want.x, want.y, got["x"], got["y"])
				}
				if got["text-anchor"] != want.anchor {
					t.Errorf("Expected %s anchor %s, got %s", what, want.anchor, got["text-anchor"])
				}
				if got["dominant-baseline"] != want.baseline {
					t.Errorf("Expected %s baseline %s, got %s", what, want.baseline, got["dominant-baseline"])
				}
				if got["transform"] != want.transform {
					t.Errorf("Expected %s transform %s, got %s", what, want.transform, got["transform"])
				}
			}
			check("name", tt.pinName, attrMap(elems[1]))
			check("number", tt.pinNumber, attrMap(elems[2]))

			if elems[1].Body != "A" || elems[2].Body != "1" {
				t.Errorf("Expected bodies A and 1, got %q and %q", elems[1].Body, elems[2].Body)
			}
		})
	}
}

func TestPinLayoutTableIsComplete(t *testing.T) {
	for _, mode := range []labelMode{labelsOutside, labelsInside} {
		for _, o := range []symbol.Orientation{symbol.OrientRight, symbol.OrientLeft, symbol.OrientUp, symbol.OrientDown} {
			if _, ok := pinLayouts[pinLayoutKey{mode, o}]; !ok {
				t.Errorf("Missing pin layout for mode %d orientation %s", mode, o)
			}
		}
	}
	if len(pinLayouts) != 8 {
		t.Errorf("Expected 8 pin layouts, got %d", len(pinLayouts))
	}
}

func TestPinLabelsFollowSymbolFlags(t *testing.T) {
	tests := []struct {
		drawName, drawNums bool
		want               int
	}{
		{false, false, 1},
		{true, false, 2},
		{false, true, 2},
		{true, true, 3},
	}
	for _, tt := range tests {
		sym := &symbol.Symbol{DrawName: tt.drawName, DrawNums: tt.drawNums, PinNameOffset: 40}
		elems, err := renderPin(newDrawContext(sym, 1), testPin(symbol.OrientRight))
		if err != nil {
			t.Fatalf("renderPin failed: %v", err)
		}
		if len(elems) != tt.want {
			t.Errorf("drawName=%v drawNums=%v: expected %d elements, got %d", tt.drawName, tt.drawNums, tt.want, len(elems))
		}
	}

	sym := &symbol.Symbol{DrawNums: true}
	elems, _ := renderPin(newDrawContext(sym, 1), testPin(symbol.OrientRight))
	if elems[1].Body != "1" {
		t.Errorf("Expected the number label alone, got %q", elems[1].Body)
	}
}

func TestPinUnsupportedOrientation(t *testing.T) {
	sym := &symbol.Symbol{DrawName: true}
	_, err := renderPin(newDrawContext(sym, 1), testPin("X"))
	if !errors.Is(err, ErrUnsupportedOrientation) {
		t.Errorf("Expected ErrUnsupportedOrientation, got %v", err)
	}
}

func TestHiddenPinCountsUnitButNotExtents(t *testing.T) {
	sym := &symbol.Symbol{DrawName: true, DrawNums: true}
	dc := newDrawContext(sym, 1)

	pin := testPin(symbol.OrientRight)
	pin.Unit = 3

	elems, err := renderPin(dc, pin)
	if err != nil {
		t.Fatalf("renderPin failed: %v", err)
	}
	if len(elems) != 0 {
		t.Errorf("Expected no elements for a pin of another unit, got %d", len(elems))
	}
	if dc.extents.MaxUnit != 3 {
		t.Errorf("Expected max unit 3, got %d", dc.extents.MaxUnit)
	}
	if !dc.extents.IsEmpty() {
		t.Errorf("Expected extents untouched by hidden pin, got %+v", dc.extents.BoundingBox)
	}
}

func TestPinExtents(t *testing.T) {
	sym := &symbol.Symbol{}
	dc := newDrawContext(sym, 1)

	pin := testPin(symbol.OrientUp)
	pin.Pos = symbol.Position{X: 200, Y: -300}
	if _, err := renderPin(dc, pin); err != nil {
		t.Fatalf("renderPin failed: %v", err)
	}

	ext := dc.extents
	if ext.Min.X != 200 || ext.Max.X != 200 {
		t.Errorf("Expected x extents 200..200, got %v..%v", ext.Min.X, ext.Max.X)
	}
	if ext.Min.Y != 200 || ext.Max.Y != 300 {
		t.Errorf("Expected y extents 200..300, got %v..%v", ext.Min.Y, ext.Max.Y)
	}
}
