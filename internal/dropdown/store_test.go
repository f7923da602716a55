package dropdown

import (
	"slices"
	"testing"
)

func titles(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title()
	}
	return out
}

func isSubsequence(sub, of []string) bool {
	j := 0
	for _, s := range of {
		if j < len(sub) && sub[j] == s {
			j++
		}
	}
	return j == len(sub)
}

func TestFilterItems(t *testing.T) {
	all := Strings("Apple", "Banana", "Cherry", "Mango", "Pineapple")

	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"Empty", "", []string{"Apple", "Banana", "Cherry", "Mango", "Pineapple"}},
		{"Substring", "an", []string{"Banana", "Mango"}},
		{"CaseInsensitive", "APPLE", []string{"Apple", "Pineapple"}},
		{"NoMatch", "kiwi", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(FilterItems(all, tt.filter))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterItems(%q) = %v, want %v", tt.filter, got, tt.want)
			}
			if !isSubsequence(got, titles(all)) {
				t.Errorf("result %v is not an ordered subsequence", got)
			}
		})
	}
}

func TestFilterItemsIdempotent(t *testing.T) {
	all := Strings("Paris", "Parma", "Prague", "Porto", "Oslo")
	for _, filter := range []string{"", "p", "ar", "o", "zz"} {
		once := FilterItems(all, filter)
		twice := FilterItems(once, filter)
		if !slices.Equal(titles(once), titles(twice)) {
			t.Errorf("filter %q not idempotent: %v then %v", filter, titles(once), titles(twice))
		}
	}
}

func TestItemStoreFilterScenario(t *testing.T) {
	s := NewItemStore()
	s.SetItems(Strings("Apple", "Banana", "Cherry"))
	s.SetFilterText("an")

	if got := titles(s.Filtered()); !slices.Equal(got, []string{"Banana"}) {
		t.Fatalf("expected [Banana], got %v", got)
	}
	if !s.Filtering() {
		t.Error("expected filter to be active")
	}

	s.ResetFilter()
	if s.FilteredLen() != 3 {
		t.Errorf("expected 3 rows after reset, got %d", s.FilteredLen())
	}
}

func TestItemStoreSetItems(t *testing.T) {
	t.Run("CopiesInput", func(t *testing.T) {
		items := Strings("a", "b")
		s := NewItemStore()
		s.SetItems(items)
		items[0] = StringItem("z")
		if it, _ := s.ItemAt(0); it.Title() != "a" {
			t.Errorf("store changed with caller slice: %q", it.Title())
		}
	})

	t.Run("ResetsFilter", func(t *testing.T) {
		s := NewItemStore()
		s.SetItems(Strings("a", "b"))
		s.SetFilterText("a")
		s.SetItems(Strings("c", "d"))
		if s.Filtering() || s.FilteredLen() != 2 {
			t.Errorf("expected cleared filter, got %q with %d rows", s.FilterText(), s.FilteredLen())
		}
	})

	t.Run("DropsDuplicateIdentity", func(t *testing.T) {
		s := NewItemStore()
		s.SetItems([]Item{
			Option{Key: 1, Label: "One"},
			Option{Key: 2, Label: "Two"},
			Option{Key: 1, Label: "Uno"},
			nil,
		})
		if got := titles(s.All()); !slices.Equal(got, []string{"One", "Two"}) {
			t.Errorf("expected [One Two], got %v", got)
		}
	})

	t.Run("NonComparableKeyFallsBackToTitle", func(t *testing.T) {
		s := NewItemStore()
		s.SetItems([]Item{
			Option{Key: []int{1}, Label: "A"},
			Option{Key: []int{2}, Label: "B"},
		})
		idx, ok := s.AbsoluteIndex(Option{Key: []int{9}, Label: "B"})
		if !ok || idx != 1 {
			t.Errorf("expected index 1, got %d (ok=%t)", idx, ok)
		}
	})

	t.Run("SignalsChange", func(t *testing.T) {
		s := NewItemStore()
		calls := 0
		s.OnChange(func() { calls++ })
		s.SetItems(Strings("a"))
		s.SetFilterText("a")
		s.ResetFilter()
		if calls != 3 {
			t.Errorf("expected 3 change signals, got %d", calls)
		}
	})
}

func TestItemStoreIndexMapping(t *testing.T) {
	s := NewItemStore()
	s.SetItems([]Item{
		Option{Key: "lon", Label: "London"},
		Option{Key: "par", Label: "Paris"},
		Option{Key: "lis", Label: "Lisbon"},
	})
	s.SetFilterText("l")

	it, ok := s.FilteredAt(1)
	if !ok || it.Title() != "Lisbon" {
		t.Fatalf("expected Lisbon at filtered row 1, got %v", it)
	}
	if abs, _ := s.AbsoluteIndex(it); abs != 2 {
		t.Errorf("expected absolute index 2, got %d", abs)
	}
	if pos, ok := s.FilteredPosition(2); !ok || pos != 1 {
		t.Errorf("expected filtered position 1, got %d (ok=%t)", pos, ok)
	}
	if _, ok := s.FilteredPosition(1); ok {
		t.Error("Paris should not be visible under filter \"l\"")
	}
	if _, ok := s.ItemAt(-1); ok {
		t.Error("expected ItemAt(-1) to fail")
	}
}

func TestItemStoreFirstExactMatch(t *testing.T) {
	s := NewItemStore()
	s.SetItems([]Item{
		Option{Key: 1, Label: "Springfield"},
		Option{Key: 2, Label: "Paris"},
		Option{Key: 3, Label: "paris"},
	})

	if _, ok := s.FirstExactMatch(); ok {
		t.Error("expected no exact match without a filter")
	}
	s.SetFilterText("PARIS")
	if pos, ok := s.FirstExactMatch(); !ok || pos != 0 {
		t.Errorf("expected first exact match at row 0, got %d (ok=%t)", pos, ok)
	}
}
