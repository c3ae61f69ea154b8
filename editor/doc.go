// Package editor provides a Bubble Tea text editor component backed by the
// buffer package, with a completion popup attached to the caret.
//
// The editor owns input handling, viewport behavior and grapheme-aware
// rendering. Candidates come from a host supplied Supplier; the popup itself
// is drawn by package popup, and the editor is its popup.Host.
package editor
