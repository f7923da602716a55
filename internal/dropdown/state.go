package dropdown

import (
	"fmt"

	apperrors "dropdown/internal/errors"
)

// PresentationState is the overlay lifecycle.
type PresentationState int

const (
	StateClosed PresentationState = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s PresentationState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Animating reports whether an open or close transition is in flight.
func (s PresentationState) Animating() bool {
	return s == StateOpening || s == StateClosing
}

// next is the only legal successor of each state.
var next = map[PresentationState]PresentationState{
	StateClosed:  StateOpening,
	StateOpening: StateOpen,
	StateOpen:    StateClosing,
	StateClosing: StateClosed,
}

// transition validates from -> to.
func transition(from, to PresentationState) error {
	if n, ok := next[from]; ok && n == to {
		return nil
	}
	return apperrors.New(apperrors.CodeInvalidTransition,
		fmt.Sprintf("illegal transition %s -> %s", from, to), nil)
}
