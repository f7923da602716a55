package dropdown

import tea "github.com/charmbracelet/bubbletea"

// keyboardActive reports whether occluding-panel changes affect the control:
// only while editing a search field with keyboard handling on.
func (d *Dropdown) keyboardActive() bool {
	return d.cfg.Search.Enabled && d.cfg.Behavior.HandleKeyboard && d.editing
}

// keyboardWillShow records the panel height, then opens a closed list or
// resizes an open one. During an animation the resize waits.
func (d *Dropdown) keyboardWillShow(height int) tea.Cmd {
	if !d.keyboardActive() {
		return nil
	}
	d.keyboardHeight = max(height, 0)
	switch d.state {
	case StateClosed:
		return d.Open()
	default:
		d.pendingResize = true
		return d.flushResize()
	}
}

// keyboardWillHide zeroes the occlusion. It never closes the list.
func (d *Dropdown) keyboardWillHide() tea.Cmd {
	d.keyboardHeight = 0
	if !d.keyboardActive() || d.state == StateClosed {
		return nil
	}
	d.pendingResize = true
	return d.flushResize()
}
