package dropdown

import "time"

// Config is the single configuration structure for a Dropdown. The control
// reads these values; Style is cosmetic and never changes behavior.
type Config struct {
	Placeholder string
	AnchorWidth int // outer width of the anchor box, border included

	Style     Style
	List      ListConfig
	Behavior  Behavior
	Search    SearchConfig
	Animation AnimationConfig
	Keys      KeyMap
}

// Style holds cosmetic settings.
type Style struct {
	RowHeight   int  // cells per row
	Scrim       bool // dim the host behind the overlay (cut out over the anchor)
	ShowBorder  bool // draw a border around the anchor
	Checkmark   string
	ChevronUp   string
	ChevronDown string
}

// ListConfig controls overlay sizing.
type ListConfig struct {
	MaxHeight int // cells; 0 means unbounded
	Width     int // 0 matches the anchor width
	Spacing   int // gap between anchor and overlay
}

// Behavior toggles interaction affordances.
type Behavior struct {
	HideOnSelect         bool
	ShowCheckmark        bool
	HandleKeyboard       bool
	ScrollToSelection    bool
	FlashScrollIndicator bool
}

// SearchConfig turns the anchor into an editable filter field.
type SearchConfig struct {
	Enabled              bool
	ClearSelectionOnOpen bool
}

// AnimationConfig controls transition timing.
type AnimationConfig struct {
	Duration     time.Duration
	ReduceMotion bool // short linear transitions instead of springs
}

// DefaultConfig returns terminal-sized defaults: one-cell rows, five visible
// rows, no gap between anchor and list.
func DefaultConfig() Config {
	return Config{
		AnchorWidth: 32,
		Style: Style{
			RowHeight:   1,
			Scrim:       true,
			ShowBorder:  true,
			Checkmark:   "✓",
			ChevronUp:   "▴",
			ChevronDown: "▾",
		},
		List: ListConfig{
			MaxHeight: 5,
		},
		Behavior: Behavior{
			HideOnSelect:         true,
			ShowCheckmark:        true,
			HandleKeyboard:       true,
			ScrollToSelection:    true,
			FlashScrollIndicator: true,
		},
		Search: SearchConfig{
			ClearSelectionOnOpen: true,
		},
		Animation: AnimationConfig{
			Duration: 250 * time.Millisecond,
		},
		Keys: DefaultKeyMap(),
	}
}

// WithPlaceholder sets the placeholder text.
func (c Config) WithPlaceholder(s string) Config {
	c.Placeholder = s
	return c
}

// WithAnchorWidth sets the anchor width.
func (c Config) WithAnchorWidth(w int) Config {
	c.AnchorWidth = w
	return c
}

// WithSearch enables or disables filter mode.
func (c Config) WithSearch(enabled bool) Config {
	c.Search.Enabled = enabled
	return c
}

// WithRowHeight sets the row height in cells.
func (c Config) WithRowHeight(h int) Config {
	c.Style.RowHeight = h
	return c
}

// WithMaxHeight sets the maximum overlay height in cells.
func (c Config) WithMaxHeight(h int) Config {
	c.List.MaxHeight = h
	return c
}

// WithListWidth overrides the overlay width; 0 matches the anchor.
func (c Config) WithListWidth(w int) Config {
	c.List.Width = w
	return c
}

// WithSpacing sets the gap between anchor and overlay.
func (c Config) WithSpacing(s int) Config {
	c.List.Spacing = s
	return c
}

// WithDuration sets the open/close animation duration.
func (c Config) WithDuration(d time.Duration) Config {
	c.Animation.Duration = d
	return c
}

func (c Config) rowHeight() int {
	if c.Style.RowHeight <= 0 {
		return 1
	}
	return c.Style.RowHeight
}
