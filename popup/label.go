package popup

import (
	"strings"

	"github.com/iw2rmb/flourish-complete/internal/grapheme"
)

// LabelComponent renders a candidate as a label with an optional right
// aligned detail. Either function may return "".
func LabelComponent[T any](label, detail func(T) string) Component[T] {
	return ComponentFunc[T](func(c T, _ bool, width int) string {
		var l, d string
		if label != nil {
			l = grapheme.SingleLine(label(c))
		}
		if detail != nil {
			d = grapheme.SingleLine(detail(c))
		}
		return labelLine(l, d, width)
	})
}

func labelLine(label, detail string, width int) string {
	if width <= 0 {
		return ""
	}
	label = grapheme.Truncate(" "+label, width)
	used := grapheme.Width(label)
	if detail == "" || used+2 > width {
		return label
	}
	detail = grapheme.Truncate(detail, width-used-2)
	gap := width - used - grapheme.Width(detail) - 1
	return label + strings.Repeat(" ", max(gap, 1)) + detail
}
