package dropdown

// Container is the coordinate space the overlay is laid out in. The host
// injects it; the control never discovers it on its own.
type Container interface {
	// Bounds is the container's extent in its own coordinates.
	Bounds() Rect
	// ConvertRect maps a rectangle from the control's local coordinates into
	// the container's coordinates.
	ConvertRect(r Rect) Rect
}

// Screen is a Container covering a terminal screen, optionally with the
// control's local origin offset inside it (for hosts that render the
// control within a panel).
type Screen struct {
	Width, Height int
	Origin        Point
}

// NewScreen returns a full-screen container with a zero origin.
func NewScreen(width, height int) *Screen {
	return &Screen{Width: width, Height: height}
}

// Bounds implements Container.
func (s *Screen) Bounds() Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// ConvertRect implements Container.
func (s *Screen) ConvertRect(r Rect) Rect {
	r.X += s.Origin.X
	r.Y += s.Origin.Y
	return r
}

// Resize updates the screen size, typically from a tea.WindowSizeMsg.
func (s *Screen) Resize(width, height int) {
	s.Width = width
	s.Height = height
}
