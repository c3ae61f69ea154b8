package popup

// indexAt maps screen coordinates to the candidate index under them.
//
// Only vertical rows are interactive. The header, the no-results row and the
// popup frame never map to a candidate.
func (s *Surface) indexAt(x, y int) (int, bool) {
	if s.tree.Horizontal {
		return 0, false
	}
	st := s.opts.styles.Popup
	left := s.pos.Left + st.GetMarginLeft() + st.GetBorderLeftSize() + st.GetPaddingLeft()
	top := s.pos.Top + st.GetMarginTop() + st.GetBorderTopSize() + st.GetPaddingTop()

	bodyX := x - left
	bodyY := y - top - s.tree.HeaderHeight()
	width := s.size.Width - st.GetHorizontalFrameSize()
	if bodyX < 0 || bodyX >= width || bodyY < 0 || bodyY >= s.scroll.Height() {
		return 0, false
	}

	row, ok := s.tree.rowAt(bodyY + s.scroll.Offset())
	if !ok || !row.Interactive() {
		return 0, false
	}
	return row.Index, true
}
