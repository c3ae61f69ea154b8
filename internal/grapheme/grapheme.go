package grapheme

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// CellWidth returns the terminal width of a single cluster. Zero-width
// clusters count as one cell so they stay addressable.
func CellWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 1 {
		w = 1
	}
	return w
}

// Width returns the terminal width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += CellWidth(c)
	}
	return w
}

// Truncate cuts text to at most width cells without splitting a cluster.
// A wide cluster that straddles the limit is replaced by padding.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := CellWidth(c)
		if used+w > width {
			sb.WriteString(strings.Repeat(" ", width-used))
			break
		}
		sb.WriteString(c)
		used += w
	}
	return sb.String()
}

// SingleLine drops line breaks and control characters from s.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, s)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsWord reports whether cluster belongs to an identifier-like word.
func IsWord(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return true
}
