// Package dropdown implements a selectable-list input control for Bubble Tea
// programs: an anchor field that opens a floating, filterable option list
// positioned relative to the anchor.
package dropdown

// Item is a single option in the list.
//
// ID is the identity key used for equality and index mapping. It must be a
// comparable value (the same rules as map keys) and stable for the lifetime
// of the item.
type Item interface {
	Title() string
	Image() string // optional glyph shown before the title; "" for none
	ID() any
}

// StringItem is the simplest Item: the title doubles as the identity key.
type StringItem string

func (s StringItem) Title() string { return string(s) }
func (s StringItem) Image() string { return "" }
func (s StringItem) ID() any       { return string(s) }

// Option is an Item with an explicit identity key, useful when titles repeat.
type Option struct {
	Key   any
	Label string
	Icon  string
}

func (o Option) Title() string { return o.Label }
func (o Option) Image() string { return o.Icon }

// ID returns Key, falling back to Label when no key was set.
func (o Option) ID() any {
	if o.Key == nil {
		return o.Label
	}
	return o.Key
}

// Strings converts plain titles into items.
func Strings(titles ...string) []Item {
	items := make([]Item, len(titles))
	for i, t := range titles {
		items[i] = StringItem(t)
	}
	return items
}

// Selection is the result delivered when the user picks a row.
type Selection struct {
	Item  Item
	Index int // absolute index into the unfiltered item list
}
