package popup

import "github.com/charmbracelet/bubbles/viewport"

// Rows is the container view the scroll tracker needs: how many selectable
// rows there are and which body lines each one covers.
type Rows interface {
	Len() int
	Span(index int) (start, end int)
}

// ScrollTracker keeps the selected row inside the popup's scrollable area.
//
// It reacts to changes of the selected index only. Re-rendering with the same
// selection leaves the scroll offset alone, so content updates do not make
// the list jump.
type ScrollTracker struct {
	vp viewport.Model

	last    int
	tracked bool
}

func NewScrollTracker() ScrollTracker {
	return ScrollTracker{vp: viewport.New(0, 0)}
}

// SetContent replaces the scrollable content and the visible area.
func (s *ScrollTracker) SetContent(content string, width, height int) {
	s.vp.Width = max(width, 0)
	s.vp.Height = max(height, 0)
	s.vp.SetContent(content)
	// Re-clamp in case the content or the area shrank.
	s.vp.SetYOffset(s.vp.YOffset)
}

// Track brings row selected into view if the selection changed since the
// last call. It reports whether the selection change was handled.
func (s *ScrollTracker) Track(selected int, rows Rows) bool {
	if s.tracked && selected == s.last {
		return false
	}
	if rows == nil || selected < 0 || selected >= rows.Len() {
		// Invalid indexes are not remembered.
		s.tracked = false
		return false
	}
	s.last = selected
	s.tracked = true

	start, end := rows.Span(selected)
	top := s.vp.YOffset
	bottom := top + s.vp.Height
	switch {
	case start < top:
		s.vp.SetYOffset(start)
	case end > bottom:
		s.vp.SetYOffset(end - s.vp.Height)
	}
	return true
}

// ScrollBy moves the visible area by delta lines without touching the
// tracked selection.
func (s *ScrollTracker) ScrollBy(delta int) {
	s.vp.SetYOffset(s.vp.YOffset + delta)
}

// Reset forgets the tracked selection and scrolls back to the top.
func (s *ScrollTracker) Reset() {
	s.tracked = false
	s.last = 0
	s.vp.SetContent("")
	s.vp.GotoTop()
}

func (s ScrollTracker) Offset() int { return s.vp.YOffset }

func (s ScrollTracker) Height() int { return s.vp.Height }

func (s ScrollTracker) View() string {
	if s.vp.Width <= 0 || s.vp.Height <= 0 {
		return ""
	}
	return s.vp.View()
}
