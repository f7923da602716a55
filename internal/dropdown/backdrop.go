package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"dropdown/internal/theme"
)

// backdrop covers the host while the overlay is up. It catches presses
// outside the list and, with a scrim, dims everything except a cut-out over
// the anchor.
type backdrop struct {
	cutout Rect
	scrim  bool
}

func newBackdrop(cutout Rect, scrim bool) *backdrop {
	return &backdrop{cutout: cutout, scrim: scrim}
}

// apply dims base outside the cut-out. A transparent backdrop leaves base
// untouched.
func (b *backdrop) apply(base string) string {
	if b == nil || !b.scrim || base == "" {
		return base
	}
	lines := splitLines(base)
	for y, line := range lines {
		if y < b.cutout.Y || y >= b.cutout.Bottom() {
			lines[y] = dimText(ansi.Strip(line))
			continue
		}
		w := ansi.StringWidth(line)
		left := ansi.Cut(line, 0, b.cutout.X)
		mid := ansi.Cut(line, b.cutout.X, b.cutout.Right())
		right := ansi.Cut(line, b.cutout.Right(), w)
		lines[y] = dimText(ansi.Strip(left)) + mid + dimText(ansi.Strip(right))
	}
	return strings.Join(lines, "\n")
}

func dimText(s string) string {
	if s == "" {
		return ""
	}
	return styleScrim().Render(s)
}

func styleScrim() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted).
		Faint(true)
}
