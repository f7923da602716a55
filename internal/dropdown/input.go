package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// listState is the per-presentation list state: keyboard highlight, scroll
// position and scroll indicator visibility.
type listState struct {
	highlight int // filtered row, -1 for none
	offset    int // first visible filtered row
	indicator bool
}

// Update routes animation frames, keyboard occlusion, mouse and key messages.
// Key messages are only handled while focused.
func (d *Dropdown) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case frameMsg:
		return d.handleFrame(msg)
	case flashMsg:
		if msg.id == d.id && msg.seq == d.flashSeq && d.list != nil {
			d.list.indicator = false
		}
		return nil
	case KeyboardWillShowMsg:
		return d.keyboardWillShow(msg.Height)
	case KeyboardWillHideMsg:
		return d.keyboardWillHide()
	case tea.MouseMsg:
		return d.handleMouse(msg)
	case tea.KeyMsg:
		if !d.focused {
			return nil
		}
		return d.handleKey(msg)
	}

	if d.editing {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return cmd
	}
	return nil
}

func (d *Dropdown) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	pt := Point{X: msg.X, Y: msg.Y}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return d.tap(pt)
	case tea.MouseButtonWheelUp:
		if d.state == StateOpen && d.current.Frame.Contains(pt) {
			return d.scrollBy(-1)
		}
	case tea.MouseButtonWheelDown:
		if d.state == StateOpen && d.current.Frame.Contains(pt) {
			return d.scrollBy(1)
		}
	}
	return nil
}

// tap hit-tests a press: overlay rows first, then the anchor (which sits in
// the backdrop's cut-out), then the backdrop.
func (d *Dropdown) tap(pt Point) tea.Cmd {
	if d.state != StateClosed && d.current.Frame.Contains(pt) {
		if d.state != StateOpen {
			return nil
		}
		row := d.list.offset + (pt.Y-d.current.Frame.Y)/d.cfg.rowHeight()
		return d.selectRow(row)
	}
	if d.AnchorFrame().Contains(pt) {
		return d.tapAnchor()
	}
	if d.state != StateClosed {
		return d.tapBackdrop()
	}
	return nil
}

func (d *Dropdown) tapAnchor() tea.Cmd {
	if d.cfg.Search.Enabled && !d.editing {
		return d.Focus()
	}
	d.focused = true
	return d.Toggle()
}

// tapBackdrop toggles a plain list. A search list only closes, so a stray
// press never reopens it under the user's typing.
func (d *Dropdown) tapBackdrop() tea.Cmd {
	if !d.cfg.Search.Enabled {
		return d.Toggle()
	}
	if d.state == StateOpen {
		return d.Close()
	}
	return nil
}

func (d *Dropdown) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := d.cfg.Keys
	open := d.state == StateOpen

	switch {
	case key.Matches(msg, k.Dismiss):
		if d.state != StateClosed {
			return d.tapBackdrop()
		}
		d.endEditing()
		return nil

	case key.Matches(msg, k.Toggle):
		return d.Toggle()

	case key.Matches(msg, k.Select):
		if open && d.validHighlight() {
			return d.selectRow(d.list.highlight)
		}
		if d.editing {
			d.endEditing()
			return nil
		}
		if d.state == StateClosed {
			return d.tapAnchor()
		}
		return nil

	case open && key.Matches(msg, k.Up):
		return d.moveHighlight(-1)
	case open && key.Matches(msg, k.Down):
		return d.moveHighlight(1)
	case open && key.Matches(msg, k.PageUp):
		return d.moveHighlight(-d.visibleRows())
	case open && key.Matches(msg, k.PageDown):
		return d.moveHighlight(d.visibleRows())
	case open && key.Matches(msg, k.Home):
		return d.moveHighlight(-d.store.FilteredLen())
	case open && key.Matches(msg, k.End):
		return d.moveHighlight(d.store.FilteredLen())

	case d.state == StateClosed && key.Matches(msg, k.Down):
		return d.Toggle()

	case !d.editing && key.Matches(msg, k.Activate):
		return d.tapAnchor()
	}

	if d.editing {
		return d.handleText(msg)
	}
	return nil
}

// handleText feeds a key to the text field and, when the text changed,
// applies it as the filter and opens a closed list.
func (d *Dropdown) handleText(msg tea.KeyMsg) tea.Cmd {
	prev := d.input.Value()
	// Typing over a committed title replaces it.
	if msg.Type == tea.KeyRunes && !d.store.Filtering() && prev != "" && prev == d.sel.DisplayTitle() {
		d.input.SetValue("")
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	text := d.input.Value()
	if text == prev {
		return cmd
	}
	d.store.SetFilterText(text)
	if d.state == StateClosed {
		return tea.Batch(cmd, d.Open())
	}
	return tea.Batch(cmd, d.flushResize())
}

func (d *Dropdown) validHighlight() bool {
	return d.list != nil && d.list.highlight >= 0 && d.list.highlight < d.store.FilteredLen()
}

// visibleRows is the row capacity of the final overlay for the current
// filtered count.
func (d *Dropdown) visibleRows() int {
	rowH := d.cfg.rowHeight()
	h := ContentHeight(rowH, d.cfg.List.MaxHeight, d.store.FilteredLen())
	return max(h/rowH, 1)
}

func (d *Dropdown) scrollable() bool {
	return d.store.FilteredLen() > d.visibleRows()
}

// highlightSelection points the highlight at the selected row and, when
// enabled, scrolls it into view against the final row capacity.
func (d *Dropdown) highlightSelection() {
	if pos, ok := d.store.FilteredPosition(d.sel.Index()); ok {
		d.list.highlight = pos
	} else if pos, ok := d.store.FirstExactMatch(); ok {
		d.list.highlight = pos
	} else if d.store.FilteredLen() > 0 {
		d.list.highlight = 0
	} else {
		d.list.highlight = -1
	}
	d.list.offset = 0
	if d.cfg.Behavior.ScrollToSelection {
		d.centerOnHighlight()
	}
}

// highlightAfterChange follows the filter: an exact title match wins, then
// the first row.
func (d *Dropdown) highlightAfterChange() {
	d.list.offset = 0
	switch {
	case d.store.FilteredLen() == 0:
		d.list.highlight = -1
	case d.store.Filtering():
		if pos, ok := d.store.FirstExactMatch(); ok {
			d.list.highlight = pos
		} else {
			d.list.highlight = 0
		}
	default:
		if pos, ok := d.store.FilteredPosition(d.sel.Index()); ok {
			d.list.highlight = pos
		} else {
			d.list.highlight = 0
		}
	}
	d.adjustScrollOffset()
}

func (d *Dropdown) moveHighlight(delta int) tea.Cmd {
	n := d.store.FilteredLen()
	if n == 0 || d.list == nil {
		return nil
	}
	h := d.list.highlight + delta
	if d.list.highlight < 0 && delta > 0 {
		h = delta - 1
	}
	d.list.highlight = min(max(h, 0), n-1)
	before := d.list.offset
	d.adjustScrollOffset()
	if d.list.offset != before {
		return d.showIndicator()
	}
	return nil
}

func (d *Dropdown) scrollBy(delta int) tea.Cmd {
	if d.list == nil {
		return nil
	}
	before := d.list.offset
	d.list.offset += delta
	d.clampScroll()
	if d.list.offset == before {
		return nil
	}
	return d.showIndicator()
}

func (d *Dropdown) showIndicator() tea.Cmd {
	if !d.scrollable() {
		return nil
	}
	d.list.indicator = true
	return d.tickFlash()
}

// adjustScrollOffset ensures the highlighted row is inside the visible window.
func (d *Dropdown) adjustScrollOffset() {
	rows := d.visibleRows()
	if h := d.list.highlight; h >= 0 {
		if h < d.list.offset {
			d.list.offset = h
		}
		if h >= d.list.offset+rows {
			d.list.offset = h - rows + 1
		}
	}
	d.clampScroll()
}

// centerOnHighlight puts the highlighted row in the middle of the window,
// as far as the list ends allow.
func (d *Dropdown) centerOnHighlight() {
	if h := d.list.highlight; h >= 0 {
		d.list.offset = h - d.visibleRows()/2
	}
	d.clampScroll()
}

func (d *Dropdown) clampScroll() {
	if d.list == nil {
		return
	}
	maxOffset := max(d.store.FilteredLen()-d.visibleRows(), 0)
	d.list.offset = min(max(d.list.offset, 0), maxOffset)
}
