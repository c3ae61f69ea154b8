package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/flourish-complete/buffer"
	"github.com/iw2rmb/flourish-complete/internal/grapheme"
)

// updateMouse offers msg to the completion popup first. Events the popup
// consumes never reach the document.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if c := m.comp; c.state.Visible && c.surface != nil && c.surface.HandleMouse(msg) {
		clicked, hovered := c.takeEvents()
		switch {
		case clicked >= 0:
			m.acceptCompletion(clicked)
			m.syncFromBuffer()
			m.followCursor()
		case hovered >= 0 && hovered != c.state.Selected:
			c.state.Selected = hovered
			m.renderCompletion()
		}
		return m, nil
	}

	var cmd tea.Cmd
	prevOffset := m.viewport.YOffset
	m.viewport, cmd = m.viewport.Update(msg)

	if m.focused && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
		m.mouseInBounds(msg.X, msg.Y) {
		m.closeCompletion()
		m.buf.SetCursor(m.screenToDocPos(msg.X, msg.Y))
	}

	if m.syncFromBuffer() {
		m.followCursor()
	}
	if m.viewport.YOffset != prevOffset {
		m.renderCompletion()
	}
	return m, cmd
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

// screenToDocPos maps a cell in View to the nearest document position. A
// click on the right half of a wide cluster lands after it.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	row := min(max(y+m.viewport.YOffset, 0), m.buf.LineCount()-1)
	clusters := m.buf.Clusters(row)

	cell := 0
	for col, c := range clusters {
		w := grapheme.CellWidth(c)
		if x < cell+w {
			if w > 1 && x-cell >= (w+1)/2 {
				return buffer.Pos{Row: row, Col: col + 1}
			}
			return buffer.Pos{Row: row, Col: col}
		}
		cell += w
	}
	return buffer.Pos{Row: row, Col: len(clusters)}
}
