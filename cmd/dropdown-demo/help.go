package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

const helpMarkdown = `# Dropdown Demo

| Key | Action |
|---|---|
| enter, space | open the list or pick the highlighted row |
| up, down, pgup, pgdn, home, end | move the highlight |
| f4, alt+down | toggle the list |
| esc | dismiss |
| tab | focus or blur the control |
| ctrl+b | move the anchor to the top or bottom |
| ctrl+y | copy the selection |
| ctrl+t | next theme |
| q | quit |

With ` + "`--search`" + ` the anchor is a filter field: typing narrows the list and
the simulated keyboard pushes it upward when there is no room below.
`

// renderHelp renders the help text with glamour, falling back to wrapped
// plain text when no renderer is available.
func renderHelp(width int) string {
	if width < 20 {
		width = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wordwrap.String(helpMarkdown, width)
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return wordwrap.String(helpMarkdown, width)
	}
	return strings.TrimSpace(out)
}
