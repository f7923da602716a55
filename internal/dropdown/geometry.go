package dropdown

import "fmt"

// Point is a cell position.
type Point struct {
	X, Y int
}

// Rect is a cell rectangle. Width and Height are never negative once
// normalized by the calculator.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Right returns the first column right of the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Geometry is the overlay frame plus the direction it opens in.
type Geometry struct {
	Frame     Rect
	FlippedUp bool
}

// GeometryInput collects everything the calculator needs. Anchor is in
// container coordinates; only Container's height is consulted vertically.
type GeometryInput struct {
	Anchor         Rect
	Container      Rect
	KeyboardHeight int
	RowHeight      int
	MaxHeight      int
	Spacing        int
	Width          int // 0 uses the anchor's width and x-origin
	ItemCount      int
}

// ContentHeight is min(maxHeight, rowHeight*count), never negative.
func ContentHeight(rowHeight, maxHeight, count int) int {
	if rowHeight <= 0 {
		rowHeight = 1
	}
	if count < 0 {
		count = 0
	}
	h := rowHeight * count
	if maxHeight > 0 && h > maxHeight {
		h = maxHeight
	}
	return h
}

// ComputeGeometry places the overlay below the anchor, or above it when the
// space below cannot hold the content plus the keyboard occlusion.
func ComputeGeometry(in GeometryInput) Geometry {
	contentHeight := ContentHeight(in.RowHeight, in.MaxHeight, in.ItemCount)
	anchorBottom := in.Anchor.Bottom()
	spaceBelow := in.Container.Height - (anchorBottom + in.Spacing)

	g := Geometry{}
	if spaceBelow < in.KeyboardHeight+contentHeight {
		g.FlippedUp = true
		g.Frame.Y = in.Anchor.Y - in.Spacing - contentHeight
	} else {
		g.Frame.Y = anchorBottom + in.Spacing
	}
	g.Frame.Height = contentHeight

	if in.Width > 0 {
		g.Frame.Width = in.Width
		g.Frame.X = in.Anchor.X + in.Anchor.Width/2 - in.Width/2
	} else {
		g.Frame.Width = in.Anchor.Width
		g.Frame.X = in.Anchor.X
	}
	return g
}

// CollapsedFrame is the zero-height frame an open animation starts from: it
// sits on the edge of the final frame nearest the anchor.
func CollapsedFrame(g Geometry) Rect {
	r := g.Frame
	if g.FlippedUp {
		r.Y = g.Frame.Bottom()
	}
	r.Height = 0
	return r
}

// CollapseTarget is the zero-height frame a close animation ends on: the
// anchor edge the overlay expanded from, at the anchor's width.
func CollapseTarget(anchor Rect, flippedUp bool) Rect {
	y := anchor.Bottom()
	if flippedUp {
		y = anchor.Y
	}
	return Rect{X: anchor.X, Y: y, Width: anchor.Width}
}
