package popup

// NoSelection marks a session without a selected candidate.
const NoSelection = -1

// Component renders a single candidate into at most width cells.
type Component[T any] interface {
	Render(candidate T, selected bool, width int) string
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc[T any] func(candidate T, selected bool, width int) string

func (f ComponentFunc[T]) Render(candidate T, selected bool, width int) string {
	return f(candidate, selected, width)
}

// HeaderComponent renders the fixed header shown above the candidates.
type HeaderComponent interface {
	Render(width int) string
}

// HeaderFunc adapts a plain function to HeaderComponent.
type HeaderFunc func(width int) string

func (f HeaderFunc) Render(width int) string { return f(width) }

// Header is an optional pinned header.
type Header struct {
	Component HeaderComponent
	// Height of the header content. Zero falls back to the item height.
	Height int
}

// View describes how candidates of type T are displayed.
//
// Zero numeric fields mean "unset" and are replaced by the Metrics defaults
// when the view is resolved into a Layout.
type View[T any] struct {
	Component Component[T]
	// Key returns an identifier that is unique within one candidate set.
	Key func(T) string

	Height     int
	Width      int
	MaxVisible int
	Horizontal bool
	Header     *Header
}

// Handler is the per candidate type completion handler owned by the host.
type Handler[T any] struct {
	View View[T]
}

// Session is the completion state passed to every Render call.
type Session[T any] struct {
	// AnchorPos is the document offset the popup is attached to.
	AnchorPos int
	// Candidates in display order.
	Candidates []T
	// Selected indexes Candidates, or is NoSelection.
	Selected int
	// NoResults is shown when Candidates is empty.
	NoResults string

	OnClick func(index int)
	OnHover func(index int)
}

// Layout is a View with defaults applied. It is all the geometry engine needs
// to know about a handler.
type Layout struct {
	ItemHeight int
	ItemWidth  int
	MaxVisible int
	Horizontal bool

	HasHeader    bool
	HeaderHeight int
}

// Layout resolves v against m. Defaults are applied here and nowhere else.
func (v View[T]) Layout(m Metrics) Layout {
	m = normalizeMetrics(m)
	l := Layout{
		ItemHeight: v.Height,
		ItemWidth:  v.Width,
		MaxVisible: v.MaxVisible,
		Horizontal: v.Horizontal,
	}
	if l.ItemHeight <= 0 {
		l.ItemHeight = m.ItemHeight
	}
	if l.ItemWidth <= 0 {
		l.ItemWidth = m.ItemWidth
	}
	if l.MaxVisible <= 0 {
		l.MaxVisible = m.MaxVisible
	}
	if v.Header != nil {
		l.HasHeader = true
		l.HeaderHeight = v.Header.Height
		if l.HeaderHeight <= 0 {
			l.HeaderHeight = m.ItemHeight
		}
	}
	return l
}

func (s Session[T]) selectedValid() bool {
	return s.Selected >= 0 && s.Selected < len(s.Candidates)
}
