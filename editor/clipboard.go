package editor

import "github.com/atotto/clipboard"

// Clipboard provides editor-level clipboard integration.
type Clipboard interface {
	ReadText() (string, error)
}

// SystemClipboard reads the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
