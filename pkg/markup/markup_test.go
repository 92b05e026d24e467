package markup

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestStringSelfClosing(t *testing.T) {
	el := New("rect", A("x", -500.0), A("y", -600), A("width", 1050.5))
	want := `<rect x="-500" y="-600" width="1050.5"/>`
	if got := el.String(); got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestStringEscapes(t *testing.T) {
	el := New("text", A("style", `a "b" <c>`)).WithBody("R&D <1>")
	got := el.String()
	if !strings.Contains(got, `style="a &#34;b&#34; &lt;c&gt;"`) {
		t.Errorf("Attribute not escaped: %s", got)
	}
	if !strings.Contains(got, `>R&amp;D &lt;1&gt;</text>`) {
		t.Errorf("Body not escaped: %s", got)
	}
}

func TestEncodeIndented(t *testing.T) {
	root := New("svg", A("version", "1.1")).Append(
		New("g", A("class", "viewport")).Append(
			New("circle", A("r", 150)),
			New("text").WithBody("U?"),
		),
	)

	var buf bytes.Buffer
	if err := Encode(&buf, root); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	want := `<?xml version="1.0" encoding="UTF-8"?>
<svg version="1.1">
  <g class="viewport">
    <circle r="150"/>
    <text>U?</text>
  </g>
</svg>`
	if got := buf.String(); got != want {
		t.Errorf("Unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestGetAndFind(t *testing.T) {
	root := New("svg").Append(
		New("g").Append(New("text", A("x", 1.5)), New("line")),
		New("text", A("x", 2)),
	)

	texts := root.Find("text")
	if len(texts) != 2 {
		t.Fatalf("Expected 2 text elements, got %d", len(texts))
	}
	if got := texts[0].GetString("x"); got != "1.5" {
		t.Errorf("Expected x=1.5, got %s", got)
	}
	if _, ok := texts[0].Get("y"); ok {
		t.Error("Expected missing attribute")
	}
	if got := texts[1].GetString("missing"); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"none", "none"},
		{1.0 / 3, "0.3333333333333333"},
		{math.Copysign(0, -1), "0"},
		{1e21, "1000000000000000000000"},
		{55, "55"},
		{int64(7), "7"},
		{true, "true"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
