package popup

import (
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

var (
	// ErrNotMounted is returned when rendering into a surface that was never
	// created.
	ErrNotMounted = errors.New("popup: surface is not mounted")
	// ErrDestroyed is returned when rendering into a destroyed surface.
	ErrDestroyed = errors.New("popup: surface has been destroyed")
)

// Host is what the popup needs from the embedding editor.
type Host interface {
	// CoordsAtPos maps a document offset to its screen box.
	CoordsAtPos(pos int) Coords
	// SelectionHead is the document offset of the caret.
	SelectionHead() int
	// ViewportSize is the area the popup is positioned in.
	ViewportSize() Viewport
}

type surfaceState uint8

const (
	stateUnmounted surfaceState = iota
	stateMounted
	stateDestroyed
)

func (s surfaceState) String() string {
	switch s {
	case stateMounted:
		return "mounted"
	case stateDestroyed:
		return "destroyed"
	default:
		return "unmounted"
	}
}

type options struct {
	metrics Metrics
	styles  Styles
	logger  *slog.Logger
}

// Option configures a Surface.
type Option func(*options)

func WithMetrics(m Metrics) Option {
	return func(o *options) { o.metrics = normalizeMetrics(m) }
}

func WithStyles(st Styles) Option {
	return func(o *options) { o.styles = st }
}

// WithLogger sets the logger used for lifecycle tracing.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Surface is the single overlay a completion interaction renders into.
//
// A Surface is created mounted, can be rendered any number of times and is
// destroyed once. It is not safe for concurrent use; Bubble Tea serializes
// Update and View.
type Surface struct {
	state surfaceState
	opts  options

	size   Size
	pos    Position
	tree   Tree
	scroll ScrollTracker

	onClick func(int)
	onHover func(int)

	view string
}

// Create allocates a mounted surface. Nothing is drawn until Render.
func Create(opts ...Option) *Surface {
	o := options{
		metrics: CellMetrics(),
		styles:  DefaultStyles(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Surface{
		state:  stateMounted,
		opts:   o,
		scroll: NewScrollTracker(),
	}
	s.opts.logger.Debug("completion popup created")
	return s
}

// Render recomputes geometry for session, applies it to s and replaces the
// rendered list. It is cheap enough to call on every keystroke.
func Render[T any](s *Surface, host Host, session Session[T], handler Handler[T]) error {
	if s == nil || s.state == stateUnmounted {
		return ErrNotMounted
	}
	if s.state == stateDestroyed {
		s.opts.logger.Warn("render on destroyed completion popup")
		return ErrDestroyed
	}

	m := s.opts.metrics
	layout := handler.View.Layout(m)
	size := ComputeSize(layout, len(session.Candidates), m)

	anchor := host.CoordsAtPos(session.AnchorPos)
	caret := host.CoordsAtPos(host.SelectionHead())
	pos := ComputePosition(anchor, caret, size, host.ViewportSize(), m)

	tree := BuildTree(session, handler, m)

	s.size = size
	s.pos = pos
	s.tree = tree
	s.onClick = session.OnClick
	s.onHover = session.OnHover

	st := s.opts.styles
	bodyWidth := max(size.Width-st.Popup.GetHorizontalFrameSize(), 0)
	bodyHeight := max(size.Height-m.Chrome-tree.HeaderHeight(), 0)
	s.scroll.SetContent(tree.DrawBody(bodyWidth, st), bodyWidth, bodyHeight)
	s.scroll.Track(session.Selected, tree)

	s.compose()
	s.opts.logger.Debug("completion popup rendered",
		"candidates", len(session.Candidates),
		"selected", session.Selected,
		"left", pos.Left, "top", pos.Top,
		"width", size.Width, "height", size.Height,
	)
	return nil
}

// Destroy unmounts the rendered list. Later calls are no-ops.
func (s *Surface) Destroy() {
	if s == nil || s.state == stateDestroyed {
		return
	}
	s.state = stateDestroyed
	s.tree = Tree{}
	s.view = ""
	s.onClick = nil
	s.onHover = nil
	s.scroll.Reset()
	s.opts.logger.Debug("completion popup destroyed")
}

// Mounted reports whether s can be rendered into.
func (s *Surface) Mounted() bool { return s != nil && s.state == stateMounted }

func (s *Surface) Size() Size { return s.size }

func (s *Surface) Position() Position { return s.pos }

func (s *Surface) Tree() Tree { return s.tree }

// ScrollOffset is the first visible body line.
func (s *Surface) ScrollOffset() int { return s.scroll.Offset() }

// View is the rendered popup, or "" when nothing is mounted.
func (s *Surface) View() string {
	if !s.Mounted() {
		return ""
	}
	return s.view
}

// Composite draws the popup over base at its computed position. Parts of the
// popup left of or above the origin are clipped.
func (s *Surface) Composite(base string) string {
	view := s.View()
	if view == "" {
		return base
	}
	fg, x, y := clipToOrigin(view, s.pos)
	if fg == "" {
		return base
	}
	return overlay.Composite(fg, base, overlay.Left, overlay.Top, x, y)
}

// HandleMouse dispatches mouse events that land on the popup. It reports
// whether msg was consumed; consumed events must not reach the editor.
func (s *Surface) HandleMouse(msg tea.MouseMsg) bool {
	if s.View() == "" || !s.contains(msg.X, msg.Y) {
		return false
	}

	if tea.MouseEvent(msg).IsWheel() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			s.scroll.ScrollBy(-1)
			s.compose()
		case tea.MouseButtonWheelDown:
			s.scroll.ScrollBy(1)
			s.compose()
		}
		return true
	}

	index, ok := s.indexAt(msg.X, msg.Y)
	if !ok {
		return true
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if s.onClick != nil {
			s.onClick(index)
		}
	case msg.Action == tea.MouseActionMotion:
		if s.onHover != nil {
			s.onHover(index)
		}
	}
	return true
}

func (s *Surface) compose() {
	st := s.opts.styles
	width := max(s.size.Width-st.Popup.GetHorizontalFrameSize(), 0)
	if width == 0 || s.size.Height <= 0 {
		s.view = ""
		return
	}

	parts := make([]string, 0, 2)
	if header := s.tree.DrawHeader(width, st); header != "" {
		parts = append(parts, header)
	}
	if body := s.scroll.View(); body != "" {
		parts = append(parts, body)
	}
	s.view = st.Popup.Render(strings.Join(parts, "\n"))
}

func (s *Surface) contains(x, y int) bool {
	return x >= s.pos.Left && x < s.pos.Left+s.size.Width &&
		y >= s.pos.Top && y < s.pos.Top+s.size.Height
}

func clipToOrigin(view string, pos Position) (string, int, int) {
	lines := strings.Split(view, "\n")
	x, y := pos.Left, pos.Top
	if y < 0 {
		if -y >= len(lines) {
			return "", 0, 0
		}
		lines = lines[-y:]
		y = 0
	}
	if x < 0 {
		for i, line := range lines {
			lines[i] = ansi.Cut(line, -x, ansi.StringWidth(line))
		}
		x = 0
	}
	return strings.Join(lines, "\n"), x, y
}
