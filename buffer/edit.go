package buffer

import (
	"slices"
	"strings"

	"github.com/iw2rmb/flourish-complete/internal/grapheme"
)

// InsertText inserts s at the cursor and moves the cursor past it.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	b.cursor = b.replaceRange(b.cursor, b.cursor, s)
	b.bump()
}

func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward removes the cluster before the cursor, joining lines at a
// line start.
func (b *Buffer) DeleteBackward() {
	c := b.cursor
	if c.Row == 0 && c.Col == 0 {
		return
	}
	start := Pos{Row: c.Row, Col: c.Col - 1}
	if c.Col == 0 {
		start = Pos{Row: c.Row - 1, Col: len(b.lines[c.Row-1])}
	}
	b.cursor = b.replaceRange(start, c, "")
	b.bump()
}

// DeleteForward removes the cluster after the cursor, joining lines at a
// line end.
func (b *Buffer) DeleteForward() {
	c := b.cursor
	last := len(b.lines) - 1
	if c.Row == last && c.Col == len(b.lines[last]) {
		return
	}
	end := Pos{Row: c.Row, Col: c.Col + 1}
	if c.Col == len(b.lines[c.Row]) {
		end = Pos{Row: c.Row + 1, Col: 0}
	}
	b.cursor = b.replaceRange(c, end, "")
	b.bump()
}

// Replace swaps the text between document offsets start and end for text and
// leaves the cursor after the inserted text. Offsets are clamped and ordered.
func (b *Buffer) Replace(start, end int, text string) {
	if start > end {
		start, end = end, start
	}
	from, to := b.PosAt(start), b.PosAt(end)
	if from == to && text == "" {
		return
	}
	b.cursor = b.replaceRange(from, to, text)
	b.bump()
}

func (b *Buffer) bump() {
	b.version++
	b.textVersion++
}

// replaceRange replaces [start, end) with text and returns the position just
// after the inserted text. Both positions must be clamped and ordered.
//
// The edited lines are segmented again so a cluster that forms across the
// seam, such as a letter followed by an inserted combining mark, stays whole.
func (b *Buffer) replaceRange(start, end Pos, text string) Pos {
	head := join(b.lines[start.Row][:start.Col])
	tail := join(b.lines[end.Row][end.Col:])

	ins := strings.Split(text, "\n")
	last := len(ins) - 1
	ins[0] = head + ins[0]
	col := grapheme.Count(ins[last])
	ins[last] += tail

	repl := make([][]string, len(ins))
	for i, s := range ins {
		repl[i] = grapheme.Split(s)
	}
	b.lines = slices.Replace(b.lines, start.Row, end.Row+1, repl...)
	return Pos{Row: start.Row + last, Col: min(col, len(repl[last]))}
}

func join(clusters []string) string {
	return strings.Join(clusters, "")
}
