package unitsel

// Selection is a parsed unit selection: either "all" or a comma separated
// list of units and inclusive unit ranges.
type Selection struct {
	All   bool    `  @KwAll`
	Items []*Item `| @@ ( Comma @@ )*`
}

// Item is a single unit ("2") or an inclusive range ("2-4").
type Item struct {
	From int  `@Integer`
	To   *int `( Dash @Integer )?`
}

// Last returns the final unit of the item.
func (i *Item) Last() int {
	if i.To == nil {
		return i.From
	}
	return *i.To
}
