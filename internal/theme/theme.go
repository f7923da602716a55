// Package theme provides the semantic palette the dropdown control and the
// demo program paint with.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette holds the semantic colors for one theme. Every role is an
// AdaptiveColor so light and dark terminals both render legibly.
type Palette struct {
	Primary   lipgloss.AdaptiveColor // focused anchor border, scroll thumb
	Secondary lipgloss.AdaptiveColor // highlighted row text
	Accent    lipgloss.AdaptiveColor // checkmark, chevron
	Success   lipgloss.AdaptiveColor

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor // placeholder, scrim text, hints

	Background lipgloss.AdaptiveColor // host background
	Surface    lipgloss.AdaptiveColor // overlay list background
	Selection  lipgloss.AdaptiveColor // highlighted row background

	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
	BorderDim     lipgloss.AdaptiveColor
}

// Adaptive is shorthand for building an AdaptiveColor from dark/light hex.
func Adaptive(dark, light string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: dark, Light: light}
}
