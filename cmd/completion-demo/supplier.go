package main

import (
	"slices"
	"strings"

	"github.com/iw2rmb/flourish-complete/editor"
)

// wordSupplier offers the words starting with the query, case-insensitively,
// in alphabetical order.
type wordSupplier struct {
	words []string
}

func newWordSupplier(words []string) wordSupplier {
	sorted := slices.Clone(words)
	slices.SortFunc(sorted, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return wordSupplier{words: slices.Compact(sorted)}
}

func (s wordSupplier) Complete(query string) []editor.CompletionItem {
	q := strings.ToLower(query)
	var out []editor.CompletionItem
	for _, w := range s.words {
		if !strings.HasPrefix(strings.ToLower(w), q) {
			continue
		}
		out = append(out, editor.CompletionItem{ID: w, Label: w})
	}
	return out
}
