package popup

import (
	"strconv"
	"strings"
	"testing"
)

type unitRows int

func (r unitRows) Len() int { return int(r) }

func (r unitRows) Span(i int) (int, int) { return i, i + 1 }

func scrollContent(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "row" + strconv.Itoa(i)
	}
	return strings.Join(lines, "\n")
}

func newTracker(rows, height int) ScrollTracker {
	s := NewScrollTracker()
	s.SetContent(scrollContent(rows), 8, height)
	return s
}

func TestScrollTracker_BringsSelectionIntoView(t *testing.T) {
	s := newTracker(10, 3)
	rows := unitRows(10)

	if !s.Track(2, rows) {
		t.Fatalf("first selection should be tracked")
	}
	if got, want := s.Offset(), 0; got != want {
		t.Fatalf("row 2 already visible: offset got %d, want %d", got, want)
	}

	if !s.Track(7, rows) {
		t.Fatalf("selection change 2 -> 7 should be tracked")
	}
	if got, want := s.Offset(), 5; got != want {
		t.Fatalf("offset after selecting 7: got %d, want %d", got, want)
	}

	if s.Track(7, rows) {
		t.Fatalf("unchanged selection must not be tracked again")
	}

	if !s.Track(1, rows) {
		t.Fatalf("selection change 7 -> 1 should be tracked")
	}
	if got, want := s.Offset(), 1; got != want {
		t.Fatalf("offset after selecting 1: got %d, want %d", got, want)
	}
}

func TestScrollTracker_VisibleSelectionDoesNotScroll(t *testing.T) {
	s := newTracker(10, 4)
	rows := unitRows(10)
	s.ScrollBy(3)

	s.Track(4, rows)
	if got, want := s.Offset(), 3; got != want {
		t.Fatalf("visible row should not move the list: got %d, want %d", got, want)
	}
}

func TestScrollTracker_UnchangedSelectionKeepsManualScroll(t *testing.T) {
	s := newTracker(10, 3)
	rows := unitRows(10)
	s.Track(0, rows)

	s.ScrollBy(4)
	s.SetContent(scrollContent(10), 8, 3)
	s.Track(0, rows)

	if got, want := s.Offset(), 4; got != want {
		t.Fatalf("re-render with same selection should keep offset: got %d, want %d", got, want)
	}
}

func TestScrollTracker_IgnoresUndefinedAndOutOfRange(t *testing.T) {
	s := newTracker(10, 3)
	rows := unitRows(10)
	s.ScrollBy(2)

	for _, idx := range []int{NoSelection, 10, 42} {
		if s.Track(idx, rows) {
			t.Fatalf("index %d should not be tracked", idx)
		}
		if got, want := s.Offset(), 2; got != want {
			t.Fatalf("index %d moved offset: got %d, want %d", idx, got, want)
		}
	}
}

func TestScrollTracker_TracksIndexOnceItBecomesValid(t *testing.T) {
	s := newTracker(10, 3)

	if s.Track(7, unitRows(3)) {
		t.Fatalf("index 7 of 3 rows should not be tracked")
	}
	if !s.Track(7, unitRows(10)) {
		t.Fatalf("index 7 of 10 rows should be tracked")
	}
	if got, want := s.Offset(), 5; got != want {
		t.Fatalf("offset: got %d, want %d", got, want)
	}
}

func TestScrollTracker_ClampsWhenContentShrinks(t *testing.T) {
	s := newTracker(10, 3)
	s.Track(9, unitRows(10))
	if got, want := s.Offset(), 7; got != want {
		t.Fatalf("offset: got %d, want %d", got, want)
	}

	s.SetContent(scrollContent(4), 8, 3)
	if got, want := s.Offset(), 1; got != want {
		t.Fatalf("offset after shrink: got %d, want %d", got, want)
	}
}

func TestScrollTracker_ViewShowsVisibleRows(t *testing.T) {
	s := newTracker(10, 3)
	s.Track(5, unitRows(10))

	assertLines(t, stripLines(s.View()), []string{"row3    ", "row4    ", "row5    "})
}
