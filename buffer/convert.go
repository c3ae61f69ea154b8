package buffer

import "strings"

// Len is the document length in offsets.
func (b *Buffer) Len() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}

// Offset converts p to a document offset. p is clamped first.
func (b *Buffer) Offset(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off + p.Col
}

// PosAt converts a document offset to a position. Offsets outside the
// document clamp to its ends.
func (b *Buffer) PosAt(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, Col: off}
		}
		off -= len(line) + 1
	}
	last := len(b.lines) - 1
	return Pos{Row: last, Col: len(b.lines[last])}
}

// TextRange returns the text between document offsets start and end.
func (b *Buffer) TextRange(start, end int) string {
	if start > end {
		start, end = end, start
	}
	from, to := b.PosAt(start), b.PosAt(end)
	if from == to {
		return ""
	}
	if from.Row == to.Row {
		return join(b.lines[from.Row][from.Col:to.Col])
	}
	parts := make([]string, 0, to.Row-from.Row+1)
	parts = append(parts, join(b.lines[from.Row][from.Col:]))
	for row := from.Row + 1; row < to.Row; row++ {
		parts = append(parts, join(b.lines[row]))
	}
	parts = append(parts, join(b.lines[to.Row][:to.Col]))
	return strings.Join(parts, "\n")
}
