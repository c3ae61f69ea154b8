package popup

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type word struct {
	id   string
	text string
}

func words(texts ...string) []word {
	out := make([]word, 0, len(texts))
	for i, t := range texts {
		out = append(out, word{id: fmt.Sprintf("w%d", i), text: t})
	}
	return out
}

func numberedWords(n int) []word {
	texts := make([]string, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("item%d", i)
	}
	return words(texts...)
}

func wordHandler(v View[word]) Handler[word] {
	v.Component = ComponentFunc[word](func(w word, _ bool, _ int) string { return w.text })
	v.Key = func(w word) string { return w.id }
	return Handler[word]{View: v}
}

func plainStyles() Styles {
	return Styles{
		Popup:     lipgloss.NewStyle(),
		Header:    lipgloss.NewStyle(),
		Item:      lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle(),
		NoResults: lipgloss.NewStyle(),
	}
}

type fakeHost struct {
	coords map[int]Coords
	head   int
	vp     Viewport
}

func (h fakeHost) CoordsAtPos(pos int) Coords { return h.coords[pos] }

func (h fakeHost) SelectionHead() int { return h.head }

func (h fakeHost) ViewportSize() Viewport { return h.vp }

func stripLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("line count: got %d, want %d\n got: %q\nwant: %q", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
