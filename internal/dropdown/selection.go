package dropdown

import "strings"

// NoSelection is the selected index when nothing is selected.
const NoSelection = -1

// SelectionTracker owns the single optional selected index. The index always
// refers to the full item list, never to the filtered view.
type SelectionTracker struct {
	store *ItemStore
	index int
}

// NewSelectionTracker returns a tracker with nothing selected.
func NewSelectionTracker(store *ItemStore) *SelectionTracker {
	return &SelectionTracker{store: store, index: NoSelection}
}

// Select sets the selected absolute index. Negative or out-of-range values
// collapse to NoSelection. Reports whether the selection changed.
func (t *SelectionTracker) Select(index int) bool {
	if index < 0 || index >= t.store.Len() {
		index = NoSelection
	}
	if index == t.index {
		return false
	}
	t.index = index
	return true
}

// Clear drops the selection.
func (t *SelectionTracker) Clear() bool {
	return t.Select(NoSelection)
}

// Index returns the selected absolute index or NoSelection.
func (t *SelectionTracker) Index() int {
	return t.index
}

// Selected returns the selected item.
func (t *SelectionTracker) Selected() (Item, bool) {
	if t.index == NoSelection {
		return nil, false
	}
	return t.store.ItemAt(t.index)
}

// DisplayTitle returns the selected item's title or "".
func (t *SelectionTracker) DisplayTitle() string {
	if it, ok := t.Selected(); ok {
		return it.Title()
	}
	return ""
}

// IsFilteredMatch decides whether a row shows the selected mark.
//
// While a filter is active, rows match by live text: the row's title equals
// the typed text ignoring case, so an exact match lights up before it is
// committed. Filtered positions shift as the user types, which is why the
// index is not used there. When several rows share that title only the first
// one in filtered order matches. Without a filter, the row's absolute index
// must equal the selected index.
func (t *SelectionTracker) IsFilteredMatch(it Item) bool {
	if it == nil {
		return false
	}
	if t.store.Filtering() {
		if !strings.EqualFold(it.Title(), t.store.FilterText()) {
			return false
		}
		first, ok := t.store.FirstExactMatch()
		if !ok {
			return false
		}
		winner, _ := t.store.FilteredAt(first)
		return sameItem(winner, it)
	}
	if t.index == NoSelection {
		return false
	}
	abs, ok := t.store.AbsoluteIndex(it)
	return ok && abs == t.index
}
