package popup

// Metrics holds the layout constants used by the geometry engine.
//
// All values share one unit. PixelMetrics matches a pixel based host;
// CellMetrics is what a terminal editor uses.
type Metrics struct {
	// Defaults applied to a View when the corresponding field is unset.
	ItemHeight int
	MaxVisible int
	ItemWidth  int

	// BorderPad is added once to every item height, to the header height and
	// to every horizontal cell width.
	BorderPad int
	// Chrome is the vertical space taken by the popup frame.
	Chrome int
	// NoResultsHeight is the floor of a vertical popup's list area.
	NoResultsHeight int

	// VerticalGap separates the popup from the anchor line.
	VerticalGap int
	// EdgeMargin is the minimum distance kept to the viewport edges.
	EdgeMargin int
}

// PixelMetrics returns metrics in pixel units.
func PixelMetrics() Metrics {
	return Metrics{
		ItemHeight:      22,
		MaxVisible:      10,
		ItemWidth:       180,
		BorderPad:       2,
		Chrome:          8,
		NoResultsHeight: 22,
		VerticalGap:     8,
		EdgeMargin:      5,
	}
}

// CellMetrics returns metrics in terminal cells for a frameless popup.
//
// A popup rendered with a bordered Styles.Popup must raise Chrome by the
// style's vertical frame size.
func CellMetrics() Metrics {
	return Metrics{
		ItemHeight:      1,
		MaxVisible:      8,
		ItemWidth:       40,
		BorderPad:       0,
		Chrome:          0,
		NoResultsHeight: 1,
		VerticalGap:     0,
		EdgeMargin:      0,
	}
}

func normalizeMetrics(m Metrics) Metrics {
	def := CellMetrics()
	if m.ItemHeight <= 0 {
		m.ItemHeight = def.ItemHeight
	}
	if m.MaxVisible <= 0 {
		m.MaxVisible = def.MaxVisible
	}
	if m.ItemWidth <= 0 {
		m.ItemWidth = def.ItemWidth
	}
	return m
}
