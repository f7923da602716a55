package dropdown

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	frameRate = 60

	// reducedMotionDuration replaces the configured duration when reduce
	// motion is on.
	reducedMotionDuration = 150 * time.Millisecond

	// flashDuration is how long the scroll indicator stays visible after
	// the list appears or scrolls.
	flashDuration = time.Second
)

var frameInterval = time.Second / frameRate

type animKind int

const (
	animOpen animKind = iota
	animClose
	animResize
)

func (k animKind) String() string {
	switch k {
	case animOpen:
		return "open"
	case animClose:
		return "close"
	default:
		return "resize"
	}
}

// frameMsg advances the animation of control id. Frames whose seq does not
// match the running animation are stale and ignored.
type frameMsg struct {
	id, seq int
}

// flashMsg hides the scroll indicator again.
type flashMsg struct {
	id, seq int
}

// keyframe is everything an animation moves.
type keyframe struct {
	Frame   Rect
	Opacity float64 // 0 hidden, 1 fully drawn
	Chevron float64 // 0 pointing down, 1 rotated
}

type animation struct {
	kind     animKind
	from, to keyframe
	frames   int
	step     int

	linear   bool
	spring   harmonica.Spring
	pos, vel float64
}

// newAnimation builds the frame plan for kind. Open settles on a critically
// damped spring, close on a slightly bouncy one; resize is linear at half the
// duration. Reduce motion forces a short linear ramp for all of them.
func newAnimation(kind animKind, from, to keyframe, cfg AnimationConfig) *animation {
	d := cfg.Duration
	damping := 1.0
	linear := false
	switch kind {
	case animClose:
		damping = 0.9
	case animResize:
		d /= 2
		linear = true
	}
	if cfg.ReduceMotion {
		d = reducedMotionDuration
		linear = true
	}

	a := &animation{
		kind:   kind,
		from:   from,
		to:     to,
		frames: frameCount(d),
		linear: linear,
	}
	if !linear {
		secs := math.Max(d.Seconds(), 1.0/frameRate)
		a.spring = harmonica.NewSpring(harmonica.FPS(frameRate), 7/secs, damping)
	}
	return a
}

func frameCount(d time.Duration) int {
	n := int(math.Round(float64(d) / float64(frameInterval)))
	if n < 1 {
		return 1
	}
	return n
}

// advance moves one frame forward. The last frame always lands exactly on
// the target.
func (a *animation) advance() (keyframe, bool) {
	a.step++
	if a.step >= a.frames {
		return a.to, true
	}
	var p float64
	if a.linear {
		p = float64(a.step) / float64(a.frames)
	} else {
		a.pos, a.vel = a.spring.Update(a.pos, a.vel, 1)
		p = clamp01(a.pos)
	}
	return interpolate(a.from, a.to, p), false
}

func interpolate(from, to keyframe, p float64) keyframe {
	return keyframe{
		Frame: Rect{
			X:      lerpInt(from.Frame.X, to.Frame.X, p),
			Y:      lerpInt(from.Frame.Y, to.Frame.Y, p),
			Width:  lerpInt(from.Frame.Width, to.Frame.Width, p),
			Height: lerpInt(from.Frame.Height, to.Frame.Height, p),
		},
		Opacity: from.Opacity + (to.Opacity-from.Opacity)*p,
		Chevron: from.Chevron + (to.Chevron-from.Chevron)*p,
	}
}

func lerpInt(a, b int, p float64) int {
	return a + int(math.Round(float64(b-a)*p))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func (d *Dropdown) tickFrame() tea.Cmd {
	id, seq := d.id, d.seq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id, seq: seq}
	})
}

func (d *Dropdown) tickFlash() tea.Cmd {
	d.flashSeq++
	id, seq := d.id, d.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashMsg{id: id, seq: seq}
	})
}
