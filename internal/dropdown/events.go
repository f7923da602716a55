package dropdown

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
)

// WillOpenMsg is emitted when the overlay starts opening.
type WillOpenMsg struct{ ID int }

// DidOpenMsg is emitted when the open animation completes.
type DidOpenMsg struct{ ID int }

// WillCloseMsg is emitted when the overlay starts closing.
type WillCloseMsg struct{ ID int }

// DidCloseMsg is emitted once the overlay is fully dismissed.
type DidCloseMsg struct{ ID int }

// ItemSelectedMsg is emitted when a row is picked.
type ItemSelectedMsg struct {
	ID int
	Selection
}

// KeyboardWillShowMsg tells the control that an occluding panel of the given
// height is about to cover the bottom of the screen.
type KeyboardWillShowMsg struct{ Height int }

// KeyboardWillHideMsg tells the control the occluding panel is going away.
type KeyboardWillHideMsg struct{}

// Listener receives lifecycle events synchronously, before the matching
// tea.Msg reaches the program.
type Listener func(msg tea.Msg)

type listenerEntry struct {
	id int
	fn Listener
}

// listeners is a small synchronous registry. Delivery order is subscription
// order.
type listeners struct {
	entries []listenerEntry
	nextID  int
}

func (l *listeners) add(fn Listener) func() {
	l.nextID++
	id := l.nextID
	l.entries = append(l.entries, listenerEntry{id: id, fn: fn})
	return func() {
		l.entries = slices.DeleteFunc(l.entries, func(e listenerEntry) bool {
			return e.id == id
		})
	}
}

func (l *listeners) publish(msg tea.Msg) {
	// Copy so a listener may unsubscribe during delivery.
	for _, e := range slices.Clone(l.entries) {
		e.fn(msg)
	}
}

// emit notifies listeners now and returns the message as a command for the
// program's update loop.
func (d *Dropdown) emit(msg tea.Msg) tea.Cmd {
	d.subscribers.publish(msg)
	return func() tea.Msg { return msg }
}
