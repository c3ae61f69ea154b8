package buffer

import "github.com/iw2rmb/flourish-complete/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start, or doc start for MoveDoc
	DirEnd  // line end, or doc end for MoveDoc
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// Move moves the cursor. Moves past the document edges are no-ops.
func (b *Buffer) Move(m Move) {
	var next Pos
	switch m.Unit {
	case MoveGrapheme:
		next = b.moveGrapheme(b.cursor, m.Dir)
	case MoveWord:
		next = b.moveWord(b.cursor, m.Dir)
	case MoveLine:
		next = b.moveLine(b.cursor, m.Dir)
	case MoveDoc:
		next = b.moveDoc(b.cursor, m.Dir)
	default:
		return
	}
	b.SetCursor(next)
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	last := len(b.lines) - 1
	switch dir {
	case DirLeft:
		switch {
		case p.Col > 0:
			return Pos{Row: p.Row, Col: p.Col - 1}
		case p.Row > 0:
			return Pos{Row: p.Row - 1, Col: len(b.lines[p.Row-1])}
		}
		return p
	case DirRight:
		switch {
		case p.Col < len(b.lines[p.Row]):
			return Pos{Row: p.Row, Col: p.Col + 1}
		case p.Row < last:
			return Pos{Row: p.Row + 1}
		}
		return p
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		return Pos{Row: p.Row, Col: prevWordBoundary(line, p.Col)}
	case DirRight:
		return Pos{Row: p.Row, Col: nextWordBoundary(line, p.Col)}
	default:
		return b.moveLine(p, dir)
	}
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome:
		return Pos{Row: p.Row}
	case DirEnd:
		return Pos{Row: p.Row, Col: len(b.lines[p.Row])}
	case DirUp:
		if p.Row == 0 {
			return p
		}
		return Pos{Row: p.Row - 1, Col: min(p.Col, len(b.lines[p.Row-1]))}
	case DirDown:
		if p.Row == len(b.lines)-1 {
			return p
		}
		return Pos{Row: p.Row + 1, Col: min(p.Col, len(b.lines[p.Row+1]))}
	default:
		return p
	}
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	last := len(b.lines) - 1
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: last, Col: len(b.lines[last])}
	default:
		return p
	}
}

// WordStart returns the start of the identifier-like word that ends at p.
// It returns p itself when the cluster before p is not a word cluster.
func (b *Buffer) WordStart(p Pos) Pos {
	p = b.clampPos(p)
	line := b.lines[p.Row]
	col := p.Col
	for col > 0 && grapheme.IsWord(line[col-1]) {
		col--
	}
	return Pos{Row: p.Row, Col: col}
}

// Word boundaries skip whitespace, then non-whitespace. A line break is a
// hard boundary.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
