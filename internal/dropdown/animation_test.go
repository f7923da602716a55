package dropdown

import (
	"testing"
	"time"
)

func TestFrameCount(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want int
	}{
		{0, 1},
		{time.Millisecond, 1},
		{150 * time.Millisecond, 9},
		{250 * time.Millisecond, 15},
		{time.Second, 60},
	}
	for _, tt := range tests {
		if got := frameCount(tt.d); got != tt.want {
			t.Errorf("frameCount(%s) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func runAnimation(t *testing.T, a *animation) []keyframe {
	t.Helper()
	var out []keyframe
	for i := 0; i < 1000; i++ {
		kf, done := a.advance()
		out = append(out, kf)
		if done {
			return out
		}
	}
	t.Fatal("animation never finished")
	return nil
}

func TestAnimationLandsOnTarget(t *testing.T) {
	from := keyframe{Frame: Rect{X: 2, Y: 4, Width: 30}}
	to := keyframe{Frame: Rect{X: 2, Y: 4, Width: 30, Height: 10}, Opacity: 1, Chevron: 1}
	cfg := AnimationConfig{Duration: 250 * time.Millisecond}

	for _, kind := range []animKind{animOpen, animClose, animResize} {
		t.Run(kind.String(), func(t *testing.T) {
			frames := runAnimation(t, newAnimation(kind, from, to, cfg))
			if last := frames[len(frames)-1]; last != to {
				t.Errorf("last frame %+v, want %+v", last, to)
			}
			for i, kf := range frames {
				if kf.Frame.Height < 0 || kf.Frame.Height > 10 {
					t.Errorf("frame %d height %d out of range", i, kf.Frame.Height)
				}
				if kf.Opacity < 0 || kf.Opacity > 1 {
					t.Errorf("frame %d opacity %f out of range", i, kf.Opacity)
				}
			}
		})
	}
}

func TestResizeIsLinearAtHalfDuration(t *testing.T) {
	from := keyframe{Frame: Rect{Height: 0}}
	to := keyframe{Frame: Rect{Height: 6}}
	a := newAnimation(animResize, from, to, AnimationConfig{Duration: 200 * time.Millisecond})
	if a.frames != 6 || !a.linear {
		t.Fatalf("expected 6 linear frames, got %d linear=%t", a.frames, a.linear)
	}
	frames := runAnimation(t, a)
	for i, kf := range frames {
		if kf.Frame.Height != i+1 {
			t.Errorf("frame %d height %d, want %d", i, kf.Frame.Height, i+1)
		}
	}
}

func TestOpenSpringIsMonotonic(t *testing.T) {
	from := keyframe{}
	to := keyframe{Frame: Rect{Height: 20}, Opacity: 1}
	frames := runAnimation(t, newAnimation(animOpen, from, to, AnimationConfig{Duration: 300 * time.Millisecond}))
	prev := -1
	for i, kf := range frames {
		if kf.Frame.Height < prev {
			t.Errorf("frame %d shrank from %d to %d", i, prev, kf.Frame.Height)
		}
		prev = kf.Frame.Height
	}
}

func TestReduceMotion(t *testing.T) {
	cfg := AnimationConfig{Duration: time.Second, ReduceMotion: true}
	for _, kind := range []animKind{animOpen, animClose, animResize} {
		a := newAnimation(kind, keyframe{}, keyframe{Opacity: 1}, cfg)
		if !a.linear || a.frames != 9 {
			t.Errorf("%s: expected 9 linear frames, got %d linear=%t", kind, a.frames, a.linear)
		}
	}
}

func TestZeroDurationCompletesOnFirstFrame(t *testing.T) {
	d := newTestDropdown(t, DefaultConfig().WithDuration(0), cities...)
	d.Open()
	d.Update(frameMsg{id: d.id, seq: d.seq})
	if !d.IsOpen() {
		t.Errorf("expected open after one frame, got %s", d.State())
	}
}
