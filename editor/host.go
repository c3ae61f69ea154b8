package editor

import (
	"github.com/iw2rmb/flourish-complete/internal/grapheme"
	"github.com/iw2rmb/flourish-complete/popup"
)

var _ popup.Host = Model{}

// CoordsAtPos maps a document offset to its cell box relative to the top-left
// corner of View. A position past the end of a line is one cell wide.
func (m Model) CoordsAtPos(pos int) popup.Coords {
	p := m.buf.PosAt(pos)
	clusters := m.buf.Clusters(p.Row)

	x := 0
	for _, c := range clusters[:p.Col] {
		x += grapheme.CellWidth(c)
	}
	w := 1
	if p.Col < len(clusters) {
		w = grapheme.CellWidth(clusters[p.Col])
	}
	y := p.Row - m.viewport.YOffset

	return popup.Coords{Left: x, Right: x + w, Top: y, Bottom: y + 1}
}

// SelectionHead is the caret's document offset.
func (m Model) SelectionHead() int {
	return m.buf.Offset(m.buf.Cursor())
}

func (m Model) ViewportSize() popup.Viewport {
	return popup.Viewport{
		Width:  m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize(),
		Height: m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(),
	}
}
