package dropdown

import "testing"

func TestSelectionTracker(t *testing.T) {
	s := NewItemStore()
	s.SetItems(Strings("London", "Paris", "Tokyo"))
	sel := NewSelectionTracker(s)

	t.Run("StartsEmpty", func(t *testing.T) {
		if sel.Index() != NoSelection {
			t.Errorf("expected no selection, got %d", sel.Index())
		}
		if sel.DisplayTitle() != "" {
			t.Errorf("expected empty title, got %q", sel.DisplayTitle())
		}
	})

	t.Run("SelectReportsChange", func(t *testing.T) {
		if !sel.Select(1) {
			t.Error("expected first Select(1) to report a change")
		}
		if sel.Select(1) {
			t.Error("expected repeated Select(1) to report no change")
		}
		if sel.DisplayTitle() != "Paris" {
			t.Errorf("expected Paris, got %q", sel.DisplayTitle())
		}
	})

	t.Run("OutOfRangeNormalizes", func(t *testing.T) {
		for _, idx := range []int{-7, 3, 99} {
			sel.Select(1)
			sel.Select(idx)
			if sel.Index() != NoSelection {
				t.Errorf("Select(%d): expected NoSelection, got %d", idx, sel.Index())
			}
		}
	})
}

func TestIsFilteredMatch(t *testing.T) {
	s := NewItemStore()
	s.SetItems([]Item{
		Option{Key: 1, Label: "Paris"},
		Option{Key: 2, Label: "Prague"},
		Option{Key: 3, Label: "Paris"},
	})
	sel := NewSelectionTracker(s)

	t.Run("IndexWithoutFilter", func(t *testing.T) {
		sel.Select(1)
		for i, it := range s.All() {
			want := i == 1
			if got := sel.IsFilteredMatch(it); got != want {
				t.Errorf("row %d (%s): got %t, want %t", i, it.Title(), got, want)
			}
		}
	})

	t.Run("LiveTextWithFilter", func(t *testing.T) {
		sel.Select(1)
		s.SetFilterText("paris")
		rows := s.Filtered()
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if !sel.IsFilteredMatch(rows[0]) {
			t.Error("expected the first Paris to match the typed text")
		}
		if sel.IsFilteredMatch(rows[1]) {
			t.Error("only the first of tied titles should match")
		}
	})

	t.Run("PartialTextDoesNotMatch", func(t *testing.T) {
		s.SetFilterText("par")
		for _, it := range s.Filtered() {
			if sel.IsFilteredMatch(it) {
				t.Errorf("%s should not match partial text", it.Title())
			}
		}
	})

	t.Run("Nil", func(t *testing.T) {
		if sel.IsFilteredMatch(nil) {
			t.Error("nil item should never match")
		}
	})
}
