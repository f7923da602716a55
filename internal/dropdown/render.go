package dropdown

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"dropdown/internal/theme"
)

const ellipsis = "…"

// View renders the anchor: the selected title, the placeholder, or the live
// text field while editing, followed by the chevron.
func (d *Dropdown) View() string {
	width := d.textWidth()

	var text string
	switch {
	case d.editing:
		text = d.input.View()
	case d.sel.Index() != NoSelection:
		text = styleAnchorText().Render(truncate.StringWithTail(d.sel.DisplayTitle(), uint(width), ellipsis))
	default:
		text = styleAnchorPlaceholder().Render(truncate.StringWithTail(d.cfg.Placeholder, uint(width), ellipsis))
	}
	if pad := width - lipgloss.Width(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}

	chevron := d.cfg.Style.ChevronDown
	if d.current.Chevron >= 0.5 {
		chevron = d.cfg.Style.ChevronUp
	}
	content := text + " " + styleChevron().Render(chevron)

	style := styleAnchor(d.focused)
	if d.cfg.Style.ShowBorder {
		style = styleAnchorBordered(d.focused)
		return style.Width(d.cfg.AnchorWidth - 2).Render(content)
	}
	return style.Width(d.cfg.AnchorWidth).Render(content)
}

// Compose draws the backdrop and the overlay over the host's full frame.
// With the list closed, base is returned unchanged.
func (d *Dropdown) Compose(base string) string {
	if d.state == StateClosed || d.backdrop == nil || d.container == nil {
		return base
	}
	out := base
	if d.current.Opacity > 0 {
		out = d.backdrop.apply(base)
	}
	f := d.current.Frame
	list := d.renderList(f)
	if list == "" {
		return out
	}
	b := d.container.Bounds()
	canvas := NewCanvas(b.Width, b.Height)
	canvas.DrawStringAt(0, 0, out)
	canvas.DrawStringAt(f.X, f.Y, list)
	return canvas.Render()
}

// Hint describes what activating the control will do.
func (d *Dropdown) Hint() string {
	if d.state == StateClosed {
		return "press enter to show options"
	}
	return "press esc to dismiss"
}

// renderList paints the rows visible in frame f, one line per cell of
// height. The first line of each row carries its title.
func (d *Dropdown) renderList(f Rect) string {
	if f.Empty() || d.list == nil {
		return ""
	}
	rowH := d.cfg.rowHeight()
	items := d.store.Filtered()
	faint := d.current.Opacity < 0.5
	bar := d.list.indicator && d.scrollable() && f.Width > 2

	textW := f.Width
	if bar {
		textW--
	}

	lines := make([]string, 0, f.Height)
	for line := 0; line < f.Height; line++ {
		row := d.list.offset + line/rowH
		var s string
		if line%rowH == 0 && row < len(items) {
			s = d.renderRow(items[row], row, textW, faint)
		} else {
			style := styleRow()
			if row == d.list.highlight && row < len(items) {
				style = styleRowHighlight()
			}
			s = style.Render(strings.Repeat(" ", textW))
		}
		if bar {
			s += d.scrollbarCell(line, f.Height, len(items)*rowH)
		}
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}

func (d *Dropdown) renderRow(it Item, row, width int, faint bool) string {
	style := styleRow()
	if row == d.list.highlight {
		style = styleRowHighlight()
	}
	if faint {
		style = style.Faint(true)
	}

	mark := " "
	if d.cfg.Behavior.ShowCheckmark && d.sel.IsFilteredMatch(it) {
		mark = d.cfg.Style.Checkmark
	}
	var icon string
	if img := it.Image(); img != "" {
		icon = img + " "
	}

	prefix := " " + mark + " " + icon
	avail := width - ansi.StringWidth(prefix) - 1
	title := ""
	if avail > 0 {
		title = truncate.StringWithTail(it.Title(), uint(avail), ellipsis)
	}

	used := ansi.StringWidth(prefix) + ansi.StringWidth(title)
	if used > width {
		return style.Render(ansi.Cut(prefix+title, 0, width))
	}
	out := style.Render(" ") +
		styleCheckmark(style).Render(mark) +
		style.Render(" "+icon+title)
	if pad := width - used; pad > 0 {
		out += style.Render(strings.Repeat(" ", pad))
	}
	return out
}

// scrollbarCell returns the indicator cell for one line of a track of
// height lines over content lines of total height.
func (d *Dropdown) scrollbarCell(line, height, content int) string {
	if content <= 0 || height <= 0 {
		return styleScrollTrack().Render("│")
	}
	thumb := max(height*height/content, 1)
	top := d.list.offset * d.cfg.rowHeight() * height / content
	if top+thumb > height {
		top = height - thumb
	}
	if line >= top && line < top+thumb {
		return styleScrollThumb().Render("┃")
	}
	return styleScrollTrack().Render("│")
}

// Dropdown styles

func styleAnchor(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if focused {
		s = s.Underline(true)
	}
	return s
}

func styleAnchorBordered(focused bool) lipgloss.Style {
	border := theme.Current().BorderDim
	if focused {
		border = theme.Current().BorderFocused
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func styleAnchorText() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text)
}

func styleAnchorPlaceholder() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted).
		Italic(true)
}

func styleChevron() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent)
}

func styleRow() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text).
		Background(theme.Current().Surface)
}

func styleRowHighlight() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary).
		Background(theme.Current().Selection).
		Bold(true)
}

// styleCheckmark keeps the row's background behind the mark.
func styleCheckmark(row lipgloss.Style) lipgloss.Style {
	return row.Foreground(theme.Current().Accent)
}

func styleScrollThumb() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Primary).
		Background(theme.Current().Surface)
}

func styleScrollTrack() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().BorderDim).
		Background(theme.Current().Surface)
}
