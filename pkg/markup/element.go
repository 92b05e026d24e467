// Package markup provides a small element tree and its XML serialization.
// Renderers build Element values; only this package knows markup syntax.
package markup

import (
	"fmt"
	"strconv"
)

// Attr is a single attribute. Value is a string, bool, integer or float.
type Attr struct {
	Key   string
	Value any
}

// Element is a node of the output tree. Attribute order is preserved on
// output. An element is not modified after it has been built.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Body     string
}

// New creates an element with the given attributes.
func New(name string, attrs ...Attr) *Element {
	return &Element{Name: name, Attrs: attrs}
}

// A is shorthand for an Attr literal.
func A(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// WithBody returns e after setting its text body.
func (e *Element) WithBody(body string) *Element {
	e.Body = body
	return e
}

// Append adds children to e and returns e.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Get returns the value of the attribute named key.
func (e *Element) Get(key string) (any, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// GetString returns the formatted value of the attribute named key, or ""
// if it is absent.
func (e *Element) GetString(key string) string {
	v, ok := e.Get(key)
	if !ok {
		return ""
	}
	return FormatValue(v)
}

// Walk calls fn for e and every descendant in document order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Find returns every element named name in document order.
func (e *Element) Find(name string) []*Element {
	var result []*Element
	e.Walk(func(el *Element) {
		if el.Name == name {
			result = append(result, el)
		}
	})
	return result
}

// Num formats a float the way attribute values are written: shortest
// representation, no exponent, no negative zero.
func Num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatValue renders an attribute value as text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return Num(val)
	case float32:
		return Num(float64(val))
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
