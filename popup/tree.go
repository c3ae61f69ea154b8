package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "…"

// Cell is one rendered candidate.
type Cell struct {
	Key      string
	Index    int
	Selected bool
	Content  string
}

// Row is one line group of the list body.
//
// Vertical lists have one interactive row per candidate. A horizontal strip
// is a single row holding every cell. The no-results row has no cells.
type Row struct {
	Key       string
	Index     int
	Height    int
	Cells     []Cell
	NoResults bool
	Label     string
}

// Interactive reports whether clicks and hovers on the row select a candidate.
func (r Row) Interactive() bool {
	return !r.NoResults && r.Index >= 0
}

// HeaderNode is the pinned header content.
type HeaderNode struct {
	Content string
	Height  int
}

// Tree is the renderer output for one Render call. It is rebuilt from
// scratch every time.
type Tree struct {
	Horizontal bool
	CellWidth  int
	Header     *HeaderNode
	Rows       []Row
}

// BuildTree renders session with handler into a Tree.
//
// Candidate keys must be unique within the session; duplicates are not
// detected.
func BuildTree[T any](session Session[T], handler Handler[T], m Metrics) Tree {
	view := handler.View
	l := view.Layout(m)

	t := Tree{Horizontal: l.Horizontal, CellWidth: l.ItemWidth}
	if l.Horizontal {
		t.CellWidth = l.ItemWidth + m.BorderPad
	}

	if l.HasHeader && view.Header.Component != nil {
		t.Header = &HeaderNode{
			Content: view.Header.Component.Render(l.ItemWidth),
			Height:  l.HeaderHeight + m.BorderPad,
		}
	}

	cells := make([]Cell, 0, len(session.Candidates))
	for i, c := range session.Candidates {
		cells = append(cells, buildCell(view, c, i, session.Selected, l.ItemWidth))
	}

	if l.Horizontal {
		if len(cells) > 0 {
			t.Rows = append(t.Rows, Row{Index: -1, Height: l.ItemHeight + m.BorderPad, Cells: cells})
		}
	} else {
		for _, c := range cells {
			t.Rows = append(t.Rows, Row{
				Key:    c.Key,
				Index:  c.Index,
				Height: l.ItemHeight + m.BorderPad,
				Cells:  []Cell{c},
			})
		}
	}

	if len(session.Candidates) == 0 {
		t.Rows = append(t.Rows, Row{
			Index:     -1,
			Height:    max(m.NoResultsHeight, 1),
			NoResults: true,
			Label:     session.NoResults,
		})
	}
	return t
}

func buildCell[T any](view View[T], c T, index, selected, width int) Cell {
	cell := Cell{Index: index, Selected: index == selected}
	if view.Key != nil {
		cell.Key = view.Key(c)
	}
	if view.Component != nil {
		cell.Content = view.Component.Render(c, cell.Selected, width)
	}
	return cell
}

// NoResults reports whether the tree shows the no-results row.
func (t Tree) NoResults() bool {
	return len(t.Rows) == 1 && t.Rows[0].NoResults
}

// HeaderHeight is the number of lines pinned above the body.
func (t Tree) HeaderHeight() int {
	if t.Header == nil {
		return 0
	}
	return t.Header.Height
}

// Len is the number of selectable positions in the body.
func (t Tree) Len() int {
	if t.Horizontal {
		if len(t.Rows) == 0 || t.Rows[0].NoResults {
			return 0
		}
		return len(t.Rows[0].Cells)
	}
	n := 0
	for _, r := range t.Rows {
		if r.Interactive() {
			n++
		}
	}
	return n
}

// Span returns the body line range [start, end) occupied by candidate index.
func (t Tree) Span(index int) (start, end int) {
	if t.Horizontal {
		if len(t.Rows) == 0 {
			return 0, 0
		}
		return 0, t.Rows[0].Height
	}
	line := 0
	for _, r := range t.Rows {
		if r.Index == index && r.Interactive() {
			return line, line + r.Height
		}
		line += r.Height
	}
	return line, line
}

// rowAt returns the row covering body line.
func (t Tree) rowAt(line int) (Row, bool) {
	if line < 0 {
		return Row{}, false
	}
	at := 0
	for _, r := range t.Rows {
		if line < at+r.Height {
			return r, true
		}
		at += r.Height
	}
	return Row{}, false
}

// DrawHeader renders the pinned header at width cells.
func (t Tree) DrawHeader(width int, st Styles) string {
	if t.Header == nil || width <= 0 {
		return ""
	}
	return fitBlock(st.Header, t.Header.Content, width, t.Header.Height)
}

// DrawBody renders every body row at width cells. The result is the full
// scrollable content; clipping to the visible rows is left to the caller.
func (t Tree) DrawBody(width int, st Styles) string {
	if width <= 0 {
		return ""
	}
	lines := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		lines = append(lines, t.drawRow(r, width, st))
	}
	return strings.Join(lines, "\n")
}

func (t Tree) drawRow(r Row, width int, st Styles) string {
	switch {
	case r.NoResults:
		return fitBlock(st.NoResults, r.Label, width, r.Height)
	case t.Horizontal:
		parts := make([]string, 0, len(r.Cells))
		for _, c := range r.Cells {
			parts = append(parts, fitBlock(cellStyle(st, c.Selected), c.Content, t.CellWidth, r.Height))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	default:
		c := r.Cells[0]
		return fitBlock(cellStyle(st, c.Selected), c.Content, width, r.Height)
	}
}

// fitBlock renders content into exactly width x height cells.
func fitBlock(style lipgloss.Style, content string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := max(width-style.GetHorizontalFrameSize(), 0)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(inner), ellipsis)
	}
	return style.
		Width(width).
		MaxWidth(width).
		Height(height).
		MaxHeight(height).
		Render(strings.Join(lines, "\n"))
}
