package markup

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

// Encoder writes element trees as indented XML.
type Encoder struct {
	w      *bufio.Writer
	indent string
	header bool
}

// NewEncoder creates an encoder writing to w with a two-space indent and an
// XML declaration.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:      bufio.NewWriter(w),
		indent: "  ",
		header: true,
	}
}

// SetIndent sets the per-level indent. An empty indent writes everything on
// one line.
func (enc *Encoder) SetIndent(indent string) {
	enc.indent = indent
}

// SetHeader controls whether the XML declaration is written.
func (enc *Encoder) SetHeader(header bool) {
	enc.header = header
}

// Encode writes el and its descendants, then flushes.
func (enc *Encoder) Encode(el *Element) error {
	if enc.header {
		if _, err := enc.w.WriteString(xml.Header); err != nil {
			return err
		}
	}
	if err := enc.writeElement(el, 0); err != nil {
		return err
	}
	return enc.w.Flush()
}

func (enc *Encoder) newline(depth int) {
	if enc.indent == "" {
		return
	}
	enc.w.WriteByte('\n')
	for i := 0; i < depth; i++ {
		enc.w.WriteString(enc.indent)
	}
}

func (enc *Encoder) writeElement(el *Element, depth int) error {
	enc.w.WriteByte('<')
	enc.w.WriteString(el.Name)
	for _, a := range el.Attrs {
		enc.w.WriteByte(' ')
		enc.w.WriteString(a.Key)
		enc.w.WriteString(`="`)
		if err := xml.EscapeText(enc.w, []byte(FormatValue(a.Value))); err != nil {
			return err
		}
		enc.w.WriteByte('"')
	}

	if len(el.Children) == 0 && el.Body == "" {
		_, err := enc.w.WriteString("/>")
		return err
	}
	enc.w.WriteByte('>')

	if el.Body != "" {
		if err := xml.EscapeText(enc.w, []byte(el.Body)); err != nil {
			return err
		}
	}

	for _, c := range el.Children {
		enc.newline(depth + 1)
		if err := enc.writeElement(c, depth+1); err != nil {
			return err
		}
	}
	if len(el.Children) > 0 {
		enc.newline(depth)
	}

	enc.w.WriteString("</")
	enc.w.WriteString(el.Name)
	_, err := enc.w.WriteString(">")
	return err
}

// Encode writes el to w with the default encoder settings.
func Encode(w io.Writer, el *Element) error {
	return NewEncoder(w).Encode(el)
}

// String returns el as compact XML without a declaration.
func (e *Element) String() string {
	var sb strings.Builder
	enc := NewEncoder(&sb)
	enc.SetIndent("")
	enc.SetHeader(false)
	if err := enc.Encode(e); err != nil {
		return ""
	}
	return sb.String()
}
