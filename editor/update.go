package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/flourish-complete/buffer"
	"github.com/iw2rmb/flourish-complete/internal/grapheme"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.buf.InsertText(string(msg.Runes))
		return m
	}

	if m.updateCompletionKey(msg) {
		return m
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirDown})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.closeCompletion()
		m.buf.InsertNewline()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		switch {
		case msg.Type == tea.KeyTab:
			m.buf.InsertText("\t")
		case msg.Type == tea.KeySpace:
			m.buf.InsertText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			text := string(msg.Runes)
			m.buf.InsertText(text)
			if m.cfg.AutoTrigger && !m.comp.state.Visible && isWordInput(text) {
				m.syncFromBuffer()
				m.followCursor()
				m.openCompletion()
			}
		}
	}
	return m
}

// updateCompletionKey handles the completion bindings and reports whether msg
// was consumed.
func (m *Model) updateCompletionKey(msg tea.KeyMsg) bool {
	if m.cfg.Supplier == nil {
		return false
	}
	ckm := m.cfg.CompletionKeyMap
	c := m.comp

	if !c.state.Visible {
		if key.Matches(msg, ckm.Trigger) {
			m.openCompletion()
			return true
		}
		return false
	}

	switch {
	case key.Matches(msg, ckm.Trigger):
		m.queryCompletion(m.SelectionHead())
		m.renderCompletion()
	case key.Matches(msg, ckm.Dismiss):
		m.closeCompletion()
	case key.Matches(msg, ckm.Next):
		c.move(1)
		m.renderCompletion()
	case key.Matches(msg, ckm.Prev):
		c.move(-1)
		m.renderCompletion()
	case key.Matches(msg, ckm.Accept):
		if m.acceptCompletion(c.state.Selected) {
			return true
		}
		// Nothing to accept: let the key reach the editor.
		m.closeCompletion()
		return false
	default:
		return false
	}
	return true
}

// pasteClipboard inserts the clipboard text. Read failures are logged and
// leave the document untouched.
func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	text, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.cfg.Logger.Warn("clipboard read failed", "err", err)
		return
	}
	if text != "" {
		m.buf.InsertText(text)
	}
}

func isWordInput(text string) bool {
	clusters := grapheme.Split(text)
	return len(clusters) > 0 && grapheme.IsWord(clusters[len(clusters)-1])
}
