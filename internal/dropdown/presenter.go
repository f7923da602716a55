package dropdown

import (
	tea "github.com/charmbracelet/bubbletea"

	apperrors "dropdown/internal/errors"
)

// Open presents the list. It is a no-op while open, and dropped while an
// animation is running.
func (d *Dropdown) Open() tea.Cmd {
	switch d.state {
	case StateOpen:
		return nil
	case StateOpening, StateClosing:
		d.log.Logf("open dropped in state %s", d.state)
		return nil
	}
	if d.container == nil {
		d.reject(apperrors.New(apperrors.CodeNoContainer, "open ignored: no container", nil))
		return nil
	}
	if d.store.FilteredLen() == 0 {
		d.log.Logf("open with no visible rows; resetting filter %q", d.store.FilterText())
		d.store.ResetFilter()
		if d.store.FilteredLen() == 0 {
			d.reject(apperrors.New(apperrors.CodeEmptyList, "open ignored: item list is empty", nil))
			return nil
		}
	}
	if err := d.setState(StateOpening); err != nil {
		return nil
	}

	d.anchorFrame = d.container.ConvertRect(d.localAnchor())
	d.geometry = d.computeGeometry()
	d.backdrop = newBackdrop(d.anchorFrame, d.cfg.Style.Scrim)
	d.list = &listState{highlight: -1}
	d.pendingResize = false
	d.highlightSelection()

	from := keyframe{Frame: CollapsedFrame(d.geometry)}
	to := keyframe{Frame: d.geometry.Frame, Opacity: 1, Chevron: 1}
	d.current = from
	d.log.Logf("opening at %s flippedUp=%t", d.geometry.Frame, d.geometry.FlippedUp)

	return tea.Batch(
		d.emit(WillOpenMsg{ID: d.id}),
		d.startAnimation(animOpen, from, to),
	)
}

// Close dismisses the list toward the anchor edge it expanded from. It is a
// no-op while closed, and dropped while an animation is running.
func (d *Dropdown) Close() tea.Cmd {
	switch d.state {
	case StateClosed:
		return nil
	case StateOpening, StateClosing:
		d.log.Logf("close dropped in state %s", d.state)
		return nil
	}
	if err := d.setState(StateClosing); err != nil {
		return nil
	}
	to := keyframe{Frame: CollapseTarget(d.anchorFrame, d.geometry.FlippedUp)}
	return tea.Batch(
		d.emit(WillCloseMsg{ID: d.id}),
		d.startAnimation(animClose, d.current, to),
	)
}

// Toggle closes an open list and opens a closed one. Requests made while an
// animation is running are dropped.
func (d *Dropdown) Toggle() tea.Cmd {
	switch d.state {
	case StateOpen:
		return d.Close()
	case StateClosed:
		return d.Open()
	default:
		d.log.Logf("toggle dropped in state %s", d.state)
		return nil
	}
}

func (d *Dropdown) setState(to PresentationState) error {
	if err := transition(d.state, to); err != nil {
		d.reject(err)
		return err
	}
	d.state = to
	return nil
}

// reject logs a dropped request with its code. Callers never see these.
func (d *Dropdown) reject(err error) {
	d.log.Logf("[%s] %v", apperrors.CodeOf(err), err)
}

func (d *Dropdown) computeGeometry() Geometry {
	return ComputeGeometry(GeometryInput{
		Anchor:         d.anchorFrame,
		Container:      d.container.Bounds(),
		KeyboardHeight: d.keyboardHeight,
		RowHeight:      d.cfg.rowHeight(),
		MaxHeight:      d.cfg.List.MaxHeight,
		Spacing:        d.cfg.List.Spacing,
		Width:          d.cfg.List.Width,
		ItemCount:      d.store.FilteredLen(),
	})
}

// startAnimation replaces any running animation; frames of the old one
// become stale.
func (d *Dropdown) startAnimation(kind animKind, from, to keyframe) tea.Cmd {
	d.seq++
	d.anim = newAnimation(kind, from, to, d.cfg.Animation)
	return d.tickFrame()
}

func (d *Dropdown) handleFrame(msg frameMsg) tea.Cmd {
	if msg.id != d.id || msg.seq != d.seq || d.anim == nil {
		return nil
	}
	kf, done := d.anim.advance()
	d.current = kf
	if !done {
		return d.tickFrame()
	}
	kind := d.anim.kind
	d.anim = nil
	return d.finish(kind)
}

func (d *Dropdown) finish(kind animKind) tea.Cmd {
	switch kind {
	case animOpen:
		if d.setState(StateOpen) != nil {
			return nil
		}
		cmds := []tea.Cmd{d.emit(DidOpenMsg{ID: d.id})}
		if d.cfg.Behavior.FlashScrollIndicator && d.scrollable() {
			d.list.indicator = true
			cmds = append(cmds, d.tickFlash())
		}
		cmds = append(cmds, d.flushResize())
		return tea.Batch(cmds...)

	case animClose:
		if d.setState(StateClosed) != nil {
			return nil
		}
		d.backdrop = nil
		d.list = nil
		d.pendingResize = false
		d.current = keyframe{}
		return d.emit(DidCloseMsg{ID: d.id})

	default:
		return d.flushResize()
	}
}

// dataChanged is the item store's change signal. Any change while the
// overlay is up is coalesced into one resize, applied once the overlay is
// open and idle.
func (d *Dropdown) dataChanged() {
	if d.list != nil {
		d.highlightAfterChange()
	}
	if d.state != StateClosed {
		d.pendingResize = true
	}
}

func (d *Dropdown) flushResize() tea.Cmd {
	if !d.pendingResize || d.state != StateOpen || d.anim != nil {
		if d.pendingResize && d.state == StateOpening {
			d.log.Logf("resize coalesced until open completes")
		}
		return nil
	}
	d.pendingResize = false
	return d.startResize()
}

// startResize animates the frame alone toward fresh geometry. The backdrop,
// selection and highlight are left alone.
func (d *Dropdown) startResize() tea.Cmd {
	d.anchorFrame = d.container.ConvertRect(d.localAnchor())
	d.backdrop.cutout = d.anchorFrame
	d.geometry = d.computeGeometry()
	d.clampScroll()
	to := keyframe{Frame: d.geometry.Frame, Opacity: 1, Chevron: 1}
	d.log.Logf("resizing to %s (%d rows, keyboard %d)",
		d.geometry.Frame, d.store.FilteredLen(), d.keyboardHeight)
	return d.startAnimation(animResize, d.current, to)
}

// selectRow handles a row tap on a filtered row.
func (d *Dropdown) selectRow(row int) tea.Cmd {
	it, ok := d.store.FilteredAt(row)
	if !ok {
		d.log.Logf("row %d out of range", row)
		return nil
	}
	abs, ok := d.store.AbsoluteIndex(it)
	if !ok {
		d.log.Logf("row %d (%q) has no identity match; selection suppressed", row, it.Title())
		return nil
	}
	d.sel.Select(abs)
	if d.cfg.Search.Enabled {
		d.input.SetValue(it.Title())
	}
	cmds := []tea.Cmd{d.emit(ItemSelectedMsg{ID: d.id, Selection: Selection{Item: it, Index: abs}})}
	if d.cfg.Behavior.HideOnSelect {
		d.endEditing()
		cmds = append(cmds, d.Close())
	}
	return tea.Batch(cmds...)
}
