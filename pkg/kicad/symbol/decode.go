package symbol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is an encoding of a symbol record.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatMsgpack
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "msgpack", "mpk":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("unknown symbol format %q", name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("cannot infer symbol format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// FormatFromContentType picks the format from an HTTP Content-Type header.
// An empty header means JSON.
func FormatFromContentType(contentType string) (Format, error) {
	if contentType == "" {
		return FormatJSON, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return 0, fmt.Errorf("invalid content type %q: %w", contentType, err)
	}
	switch mediaType {
	case "application/json", "text/json":
		return FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, nil
	case "application/msgpack", "application/x-msgpack", "application/vnd.msgpack":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("unsupported content type %q", mediaType)
	}
}

// wireSymbol is the record layout shared by every format.
type wireSymbol struct {
	Name          string     `json:"name" yaml:"name" msgpack:"name"`
	Reference     string     `json:"reference" yaml:"reference" msgpack:"reference"`
	DrawNums      bool       `json:"drawNums" yaml:"drawNums" msgpack:"drawNums"`
	DrawName      bool       `json:"drawName" yaml:"drawName" msgpack:"drawName"`
	PinNameOffset *float64   `json:"pinNameOffset" yaml:"pinNameOffset" msgpack:"pinNameOffset"`
	Draw          []wireDraw `json:"draw" yaml:"draw" msgpack:"draw"`
	Fields        []Field    `json:"fields" yaml:"fields" msgpack:"fields"`
}

// wireDraw is the union of all primitive attributes, tagged by Type.
type wireDraw struct {
	Type    string `json:"type" yaml:"type" msgpack:"type"`
	Unit    int    `json:"unit" yaml:"unit" msgpack:"unit"`
	Convert int    `json:"convert" yaml:"convert" msgpack:"convert"`

	Pos    Position   `json:"pos" yaml:"pos" msgpack:"pos"`
	Start  Position   `json:"start" yaml:"start" msgpack:"start"`
	End    Position   `json:"end" yaml:"end" msgpack:"end"`
	Points []Position `json:"points" yaml:"points" msgpack:"points"`
	Radius float64    `json:"radius" yaml:"radius" msgpack:"radius"`
	T1     int        `json:"t1" yaml:"t1" msgpack:"t1"`
	T2     int        `json:"t2" yaml:"t2" msgpack:"t2"`
	Width  float64    `json:"width" yaml:"width" msgpack:"width"`
	Fill   string     `json:"fill" yaml:"fill" msgpack:"fill"`

	Name           string  `json:"name" yaml:"name" msgpack:"name"`
	Number         string  `json:"number" yaml:"number" msgpack:"number"`
	Length         float64 `json:"length" yaml:"length" msgpack:"length"`
	Orientation    string  `json:"orientation" yaml:"orientation" msgpack:"orientation"`
	NameTextSize   float64 `json:"nameTextSize" yaml:"nameTextSize" msgpack:"nameTextSize"`
	NumberTextSize float64 `json:"numberTextSize" yaml:"numberTextSize" msgpack:"numberTextSize"`
	PinType        string  `json:"pinType" yaml:"pinType" msgpack:"pinType"`

	Text              string `json:"text" yaml:"text" msgpack:"text"`
	Angle             int    `json:"angle" yaml:"angle" msgpack:"angle"`
	HorizontalJustify string `json:"horizonalJustify" yaml:"horizonalJustify" msgpack:"horizonalJustify"`
	VerticalJustify   string `json:"verticalJustify" yaml:"verticalJustify" msgpack:"verticalJustify"`
}

func (w wireDraw) toDraw() Draw {
	c := Common{Unit: w.Unit, Convert: w.Convert}
	switch w.Type {
	case "square":
		return Square{Common: c, Pos: w.Pos, End: w.End, Width: w.Width, Fill: w.Fill}
	case "polyline":
		return Polyline{Common: c, Points: w.Points, Width: w.Width, Fill: w.Fill}
	case "pin":
		return Pin{
			Common:         c,
			Name:           w.Name,
			Number:         w.Number,
			Pos:            w.Pos,
			Length:         w.Length,
			Orientation:    Orientation(w.Orientation),
			NameTextSize:   w.NameTextSize,
			NumberTextSize: w.NumberTextSize,
			PinType:        w.PinType,
		}
	case "circle":
		return Circle{Common: c, Pos: w.Pos, Radius: w.Radius, Width: w.Width, Fill: w.Fill}
	case "arc":
		return Arc{
			Common: c,
			Pos:    w.Pos,
			Radius: w.Radius,
			T1:     Decidegrees(w.T1),
			T2:     Decidegrees(w.T2),
			Start:  w.Start,
			End:    w.End,
			Width:  w.Width,
			Fill:   w.Fill,
		}
	case "text":
		return Text{
			Common:            c,
			Pos:               w.Pos,
			Text:              w.Text,
			Angle:             Decidegrees(w.Angle),
			HorizontalJustify: w.HorizontalJustify,
			VerticalJustify:   w.VerticalJustify,
		}
	default:
		return Unknown{Common: c, Type: w.Type}
	}
}

func (w *wireSymbol) toSymbol() *Symbol {
	sym := &Symbol{
		Name:          w.Name,
		Reference:     w.Reference,
		DrawNums:      w.DrawNums,
		DrawName:      w.DrawName,
		PinNameOffset: DefaultPinNameOffset,
		Fields:        w.Fields,
	}
	if w.PinNameOffset != nil {
		sym.PinNameOffset = *w.PinNameOffset
	}
	for _, d := range w.Draw {
		sym.Draw = append(sym.Draw, d.toDraw())
	}
	return sym
}

// Decode reads one symbol record in the given format.
func Decode(r io.Reader, format Format) (*Symbol, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read symbol: %w", err)
	}

	var w wireSymbol
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &w)
	case FormatYAML:
		err = yaml.Unmarshal(data, &w)
	case FormatMsgpack:
		err = msgpack.NewDecoder(bytes.NewReader(data)).Decode(&w)
	default:
		return nil, fmt.Errorf("unknown symbol format %d", int(format))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s symbol: %w", format, err)
	}

	return w.toSymbol(), nil
}

// DecodeFile reads a symbol record from a file, picking the format from
// its extension.
func DecodeFile(path string) (*Symbol, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file, format)
}
