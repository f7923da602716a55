package dropdown

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dropdown/internal/debug"
)

var lastID atomic.Int64

// Dropdown is the control: an anchor field plus the floating list it
// presents. It owns the item store, the selection, the overlay geometry and
// the presentation state; none of these are shared between instances.
//
// A Dropdown is driven from a single Bubble Tea update loop and is not safe
// for concurrent use.
type Dropdown struct {
	id  int
	cfg Config
	log debug.Scope

	store       *ItemStore
	sel         *SelectionTracker
	subscribers listeners

	container Container
	origin    Point // anchor top-left in local coordinates
	input     textinput.Model
	focused   bool
	editing   bool

	state       PresentationState
	geometry    Geometry
	anchorFrame Rect // container coordinates, snapshotted on open and resize
	current     keyframe
	anim        *animation
	seq         int
	flashSeq    int

	// Created on Opening, dropped on Closing -> Closed.
	backdrop *backdrop
	list     *listState

	keyboardHeight int
	pendingResize  bool
}

// New creates a closed dropdown with no items.
func New(cfg Config) *Dropdown {
	if len(cfg.Keys.Select.Keys()) == 0 {
		cfg.Keys = DefaultKeyMap()
	}
	id := int(lastID.Add(1))

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = 100

	d := &Dropdown{
		id:    id,
		cfg:   cfg,
		log:   debug.Scope(fmt.Sprintf("dropdown#%d", id)),
		store: NewItemStore(),
		input: ti,
	}
	d.sel = NewSelectionTracker(d.store)
	d.store.OnChange(d.dataChanged)
	d.input.Width = d.textWidth() - 1
	return d
}

// ID distinguishes this control's messages from other dropdowns in the same
// program.
func (d *Dropdown) ID() int { return d.id }

// Config returns the configuration the control was built with.
func (d *Dropdown) Config() Config { return d.cfg }

// SetItems replaces the options. The first item becomes selected unless a
// placeholder is configured, in which case nothing is.
func (d *Dropdown) SetItems(items []Item) tea.Cmd {
	d.store.SetItems(items)
	if d.cfg.Placeholder == "" && d.store.Len() > 0 {
		d.sel.Select(0)
	} else {
		d.sel.Clear()
	}
	d.syncInput()
	return d.flushResize()
}

// Items returns a copy of the full option list.
func (d *Dropdown) Items() []Item { return d.store.All() }

// FilteredItems returns a copy of the rows currently shown.
func (d *Dropdown) FilteredItems() []Item { return d.store.Filtered() }

// SetFilterText narrows the list. While open the overlay resizes in place.
func (d *Dropdown) SetFilterText(text string) tea.Cmd {
	d.store.SetFilterText(text)
	if d.cfg.Search.Enabled && d.editing {
		d.input.SetValue(text)
	}
	return d.flushResize()
}

// ResetFilter shows every item again.
func (d *Dropdown) ResetFilter() tea.Cmd {
	return d.SetFilterText("")
}

// FilterText returns the active filter.
func (d *Dropdown) FilterText() string { return d.store.FilterText() }

// SetPlaceholder changes the placeholder and clears the selection.
func (d *Dropdown) SetPlaceholder(s string) {
	d.cfg.Placeholder = s
	d.input.Placeholder = s
	d.sel.Clear()
	d.syncInput()
}

// Select sets the selected absolute index. Out-of-range values clear the
// selection.
func (d *Dropdown) Select(index int) {
	if !d.sel.Select(index) {
		if index != d.sel.Index() {
			d.log.Logf("select(%d) normalized to %d", index, d.sel.Index())
		}
		return
	}
	d.syncInput()
	if d.list != nil {
		d.highlightSelection()
	}
}

// SelectedIndex returns the selected absolute index or NoSelection.
func (d *Dropdown) SelectedIndex() int { return d.sel.Index() }

// CurrentSelection returns the selected item.
func (d *Dropdown) CurrentSelection() (Item, bool) { return d.sel.Selected() }

// DisplayTitle returns the selected item's title, or "" with no selection.
func (d *Dropdown) DisplayTitle() string { return d.sel.DisplayTitle() }

// IsOpen reports whether the overlay is fully open.
func (d *Dropdown) IsOpen() bool { return d.state == StateOpen }

// State returns the presentation state.
func (d *Dropdown) State() PresentationState { return d.state }

// SetContainer injects the coordinate space the overlay is laid out in.
// Without one, open requests are ignored.
func (d *Dropdown) SetContainer(c Container) { d.container = c }

// MoveTo places the anchor's top-left corner, in local coordinates.
func (d *Dropdown) MoveTo(x, y int) { d.origin = Point{X: x, Y: y} }

// AnchorFrame returns the anchor's rectangle in container coordinates, or in
// local coordinates when no container is set.
func (d *Dropdown) AnchorFrame() Rect {
	local := d.localAnchor()
	if d.container == nil {
		return local
	}
	return d.container.ConvertRect(local)
}

// Frame returns the overlay's current (possibly mid-animation) rectangle.
func (d *Dropdown) Frame() Rect { return d.current.Frame }

// FlippedUp reports whether the overlay was placed above the anchor.
func (d *Dropdown) FlippedUp() bool { return d.geometry.FlippedUp }

// KeyboardHeight returns the occluded height last pushed by the host.
func (d *Dropdown) KeyboardHeight() int { return d.keyboardHeight }

// Focused reports whether the control receives key messages.
func (d *Dropdown) Focused() bool { return d.focused }

// Editing reports whether the anchor is accepting filter text. Hosts that
// simulate an on-screen keyboard show it while this is true.
func (d *Dropdown) Editing() bool { return d.editing }

// Highlight returns the highlighted filtered row, or -1.
func (d *Dropdown) Highlight() int {
	if d.list == nil {
		return -1
	}
	return d.list.highlight
}

// ScrollOffset returns the first visible filtered row.
func (d *Dropdown) ScrollOffset() int {
	if d.list == nil {
		return 0
	}
	return d.list.offset
}

// Subscribe registers a listener for lifecycle and selection messages.
func (d *Dropdown) Subscribe(fn Listener) (unsubscribe func()) {
	return d.subscribers.add(fn)
}

// Focus gives the control key focus. In search mode it also starts editing:
// the selection is optionally cleared, the filter reset, and the list
// toggled.
func (d *Dropdown) Focus() tea.Cmd {
	d.focused = true
	if !d.cfg.Search.Enabled {
		return nil
	}
	d.editing = true
	cmds := []tea.Cmd{d.input.Focus()}
	if d.cfg.Search.ClearSelectionOnOpen {
		d.sel.Clear()
		d.input.SetValue("")
	}
	d.store.ResetFilter()
	cmds = append(cmds, d.Toggle())
	return tea.Batch(cmds...)
}

// Blur removes key focus and ends editing. The overlay is left as is.
func (d *Dropdown) Blur() {
	d.focused = false
	d.endEditing()
}

func (d *Dropdown) endEditing() {
	if !d.editing {
		return
	}
	d.editing = false
	d.input.Blur()
	d.syncInput()
}

// syncInput mirrors the committed selection into the text field while the
// user is not typing.
func (d *Dropdown) syncInput() {
	if !d.cfg.Search.Enabled || d.editing {
		return
	}
	d.input.SetValue(d.sel.DisplayTitle())
}

func (d *Dropdown) anchorHeight() int {
	if d.cfg.Style.ShowBorder {
		return 3
	}
	return 1
}

func (d *Dropdown) localAnchor() Rect {
	return Rect{X: d.origin.X, Y: d.origin.Y, Width: d.cfg.AnchorWidth, Height: d.anchorHeight()}
}

// contentWidth is the anchor's width inside border and padding.
func (d *Dropdown) contentWidth() int {
	w := d.cfg.AnchorWidth - 2
	if d.cfg.Style.ShowBorder {
		w -= 2
	}
	return max(w, 3)
}

// textWidth leaves room for the chevron.
func (d *Dropdown) textWidth() int {
	return max(d.contentWidth()-2, 1)
}
