package unitsel

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SelectorLexer tokenizes unit selections such as "1,3-5" or "all".
var SelectorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},

	{Name: "KwAll", Pattern: `(?i)\ball\b`},

	{Name: "Integer", Pattern: `[0-9]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Dash", Pattern: `-`},
})
