package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/flourish-complete/popup"
)

func plainPopupStyles() *popup.Styles {
	return &popup.Styles{
		Popup:     lipgloss.NewStyle(),
		Header:    lipgloss.NewStyle(),
		Item:      lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle(),
		NoResults: lipgloss.NewStyle(),
	}
}

// prefixSupplier returns the words starting with the query and counts calls.
type prefixSupplier struct {
	words   []string
	queries []string
}

func (s *prefixSupplier) Complete(query string) []CompletionItem {
	s.queries = append(s.queries, query)
	var out []CompletionItem
	for _, w := range s.words {
		if strings.HasPrefix(w, query) {
			out = append(out, CompletionItem{ID: w, Label: w})
		}
	}
	return out
}

func newCompletionModel(t *testing.T, text string, words ...string) (Model, *prefixSupplier) {
	t.Helper()
	sup := &prefixSupplier{words: words}
	m := New(Config{
		Text:           text,
		Style:          Style{},
		Supplier:       sup,
		CompletionView: popup.View[CompletionItem]{Width: 6},
		NoResultsLabel: "none",
		PopupStyles:    plainPopupStyles(),
	})
	m = m.SetSize(12, 4)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	return m, sup
}

func keyTrigger() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyCtrlAt} }

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func viewLines(m Model) []string {
	return strings.Split(ansi.Strip(m.View()), "\n")
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
