package editor

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	// Paste reads Config.Clipboard.
	Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// CompletionKeyMap defines the bindings active while completion is enabled.
// Accept, Dismiss, Next and Prev only apply while the popup is open and take
// precedence over the editor bindings.
type CompletionKeyMap struct {
	Trigger key.Binding
	Accept  key.Binding
	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
}

func DefaultCompletionKeyMap() CompletionKeyMap {
	return CompletionKeyMap{
		Trigger: key.NewBinding(key.WithKeys("ctrl+@", "ctrl+space"), key.WithHelp("ctrl+space", "trigger completion")),
		Accept:  key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter/tab", "accept completion")),
		Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss completion")),
		Next:    key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next completion")),
		Prev:    key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev completion")),
	}
}

// HorizontalCompletionKeyMap navigates a horizontal strip with left and right.
func HorizontalCompletionKeyMap() CompletionKeyMap {
	km := DefaultCompletionKeyMap()
	km.Next = key.NewBinding(key.WithKeys("right", "ctrl+n"), key.WithHelp("→", "next completion"))
	km.Prev = key.NewBinding(key.WithKeys("left", "ctrl+p"), key.WithHelp("←", "prev completion"))
	return km
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}

func normalizeCompletionKeyMap(km CompletionKeyMap) CompletionKeyMap {
	if reflect.DeepEqual(km, CompletionKeyMap{}) {
		return DefaultCompletionKeyMap()
	}
	return km
}
