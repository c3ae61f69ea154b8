package popup

// Size is the outer size of the popup.
type Size struct {
	Width  int
	Height int
}

// Position is the top-left corner of the popup relative to the viewport.
type Position struct {
	Left int
	Top  int
}

// Coords is the screen box of a document position.
type Coords struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Viewport is the visible area the popup is positioned in.
type Viewport struct {
	Width  int
	Height int
}

// ComputeSize returns the popup size for count candidates.
//
// A vertical popup grows with the candidate count up to MaxVisible rows and
// never shrinks below the no-results row. A horizontal strip lays out every
// candidate side by side and has a fixed height.
func ComputeSize(l Layout, count int, m Metrics) Size {
	itemHeight := l.ItemHeight + m.BorderPad

	headerHeight := 0
	if l.HasHeader {
		headerHeight = l.HeaderHeight + m.BorderPad
	}

	if l.Horizontal {
		return Size{
			Width:  (l.ItemWidth + m.BorderPad) * count,
			Height: headerHeight + itemHeight + m.Chrome,
		}
	}

	rows := min(l.MaxVisible, count)
	return Size{
		Width:  l.ItemWidth,
		Height: headerHeight + m.Chrome + max(itemHeight*rows, m.NoResultsHeight),
	}
}

// ComputePosition places a popup of the given size next to anchor.
//
// The popup goes below the anchor, left aligned. It flips above the anchor
// when it would reach the bottom margin, and it is right aligned to the caret
// when it would reach the right margin. Each flip is evaluated once and the
// other axis is not re-checked, so a popup larger than the space on either
// side can still be clipped.
func ComputePosition(anchor, caret Coords, size Size, vp Viewport, m Metrics) Position {
	top := anchor.Bottom + m.VerticalGap
	left := anchor.Left

	if top+size.Height+m.EdgeMargin >= vp.Height {
		top = anchor.Top - size.Height - m.VerticalGap
	}

	if left+size.Width+m.EdgeMargin >= vp.Width {
		left = caret.Right - size.Width
	}

	return Position{Left: left, Top: top}
}
