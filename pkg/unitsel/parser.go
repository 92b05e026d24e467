// Package unitsel parses unit selections for multi-unit symbols and expands
// them against the number of units a symbol has.
package unitsel

import (
	"fmt"
	"sort"

	"github.com/alecthomas/participle/v2"
)

// Parser parses unit selections
type Parser struct {
	parser *participle.Parser[Selection]
}

// NewParser creates a new selection parser
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Selection](
		participle.Lexer(SelectorLexer),
		participle.Elide("Whitespace"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// ParseString parses a selection such as "1", "1,3", "2-4" or "all".
func (p *Parser) ParseString(input string) (*Selection, error) {
	sel, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("invalid unit selection %q: %w", input, err)
	}
	if err := sel.validate(); err != nil {
		return nil, fmt.Errorf("invalid unit selection %q: %w", input, err)
	}
	return sel, nil
}

var defaultParser = func() *Parser {
	p, err := NewParser()
	if err != nil {
		panic(err)
	}
	return p
}()

// Parse parses a selection with the package parser.
func Parse(input string) (*Selection, error) {
	return defaultParser.ParseString(input)
}

func (s *Selection) validate() error {
	if !s.All && len(s.Items) == 0 {
		return fmt.Errorf("empty selection")
	}
	for _, item := range s.Items {
		if item.From < 1 {
			return fmt.Errorf("unit %d: units start at 1", item.From)
		}
		if item.Last() < item.From {
			return fmt.Errorf("range %d-%d is reversed", item.From, item.Last())
		}
	}
	return nil
}

// Units expands the selection into sorted, distinct unit numbers. maxUnit is
// the highest unit the symbol has; a symbol without units has unit 1.
func (s *Selection) Units(maxUnit int) ([]int, error) {
	limit := max(maxUnit, 1)

	if s.All {
		units := make([]int, limit)
		for i := range units {
			units[i] = i + 1
		}
		return units, nil
	}

	seen := make(map[int]bool)
	var units []int
	for _, item := range s.Items {
		if item.Last() > limit {
			return nil, fmt.Errorf("unit %d out of range 1..%d", item.Last(), limit)
		}
		for u := item.From; u <= item.Last(); u++ {
			if !seen[u] {
				seen[u] = true
				units = append(units, u)
			}
		}
	}
	sort.Ints(units)
	return units, nil
}

// Expand parses input and expands it against maxUnit.
func Expand(input string, maxUnit int) ([]int, error) {
	sel, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return sel.Units(maxUnit)
}
