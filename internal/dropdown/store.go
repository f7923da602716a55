package dropdown

import (
	"reflect"
	"strings"
)

// ItemStore owns the full ordered item list and the active text filter.
//
// filtered is always an order-preserving subsequence of all, and identity
// keys are unique within all.
type ItemStore struct {
	all        []Item
	filtered   []Item
	filterText string
	index      map[any]int // identity key -> absolute index

	onChange func()
}

// NewItemStore returns an empty store.
func NewItemStore() *ItemStore {
	return &ItemStore{index: map[any]int{}}
}

// OnChange registers the data-changed signal. Only one handler is kept; the
// owning Dropdown installs itself here.
func (s *ItemStore) OnChange(fn func()) {
	s.onChange = fn
}

// SetItems replaces the item list wholesale and clears the filter. The slice
// is copied, so later changes to the caller's slice have no effect. Items
// whose identity key already appeared earlier in the list are dropped.
func (s *ItemStore) SetItems(items []Item) {
	s.all = make([]Item, 0, len(items))
	s.index = make(map[any]int, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		key := identityKey(it)
		if _, dup := s.index[key]; dup {
			continue
		}
		s.index[key] = len(s.all)
		s.all = append(s.all, it)
	}
	s.filterText = ""
	s.filtered = s.all
	s.changed()
}

// SetFilterText narrows the filtered view to items whose title contains text,
// ignoring case. Empty text shows everything.
func (s *ItemStore) SetFilterText(text string) {
	s.filterText = text
	s.filtered = FilterItems(s.all, text)
	s.changed()
}

// ResetFilter is SetFilterText("").
func (s *ItemStore) ResetFilter() {
	s.SetFilterText("")
}

func (s *ItemStore) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

// FilterText returns the active filter.
func (s *ItemStore) FilterText() string { return s.filterText }

// Filtering reports whether a non-empty filter is active.
func (s *ItemStore) Filtering() bool { return s.filterText != "" }

// Len returns the number of items in the full list.
func (s *ItemStore) Len() int { return len(s.all) }

// FilteredLen returns the number of visible items.
func (s *ItemStore) FilteredLen() int { return len(s.filtered) }

// All returns a copy of the full list.
func (s *ItemStore) All() []Item {
	return append([]Item(nil), s.all...)
}

// Filtered returns a copy of the visible list.
func (s *ItemStore) Filtered() []Item {
	return append([]Item(nil), s.filtered...)
}

// ItemAt returns the item at an absolute index.
func (s *ItemStore) ItemAt(i int) (Item, bool) {
	if i < 0 || i >= len(s.all) {
		return nil, false
	}
	return s.all[i], true
}

// FilteredAt returns the item at a filtered index.
func (s *ItemStore) FilteredAt(i int) (Item, bool) {
	if i < 0 || i >= len(s.filtered) {
		return nil, false
	}
	return s.filtered[i], true
}

// AbsoluteIndex resolves an item to its position in the full list by
// identity key. Filtered positions are never used for this.
func (s *ItemStore) AbsoluteIndex(it Item) (int, bool) {
	if it == nil {
		return NoSelection, false
	}
	i, ok := s.index[identityKey(it)]
	if !ok {
		return NoSelection, false
	}
	return i, true
}

// FilteredPosition maps an absolute index to its row in the filtered view.
func (s *ItemStore) FilteredPosition(absolute int) (int, bool) {
	it, ok := s.ItemAt(absolute)
	if !ok {
		return -1, false
	}
	key := identityKey(it)
	for i, f := range s.filtered {
		if identityKey(f) == key {
			return i, true
		}
	}
	return -1, false
}

// FirstExactMatch returns the filtered row whose title equals the filter
// text ignoring case. Only the first such row counts.
func (s *ItemStore) FirstExactMatch() (int, bool) {
	if s.filterText == "" {
		return -1, false
	}
	for i, it := range s.filtered {
		if strings.EqualFold(it.Title(), s.filterText) {
			return i, true
		}
	}
	return -1, false
}

// FilterItems returns the items whose title contains text, ignoring case,
// in their original order. Empty text returns items unchanged.
func FilterItems(items []Item, text string) []Item {
	if text == "" {
		return items
	}
	needle := strings.ToLower(text)
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title()), needle) {
			out = append(out, it)
		}
	}
	return out
}

// identityKey guards map operations against non-comparable IDs, which would
// otherwise panic; such items fall back to their title.
func identityKey(it Item) any {
	id := it.ID()
	if id == nil {
		return it.Title()
	}
	if !reflect.TypeOf(id).Comparable() {
		return it.Title()
	}
	return id
}

func sameItem(a, b Item) bool {
	if a == nil || b == nil {
		return false
	}
	return identityKey(a) == identityKey(b)
}
