package popup

import "github.com/charmbracelet/lipgloss"

// Styles controls the popup's rendering.
type Styles struct {
	// Popup wraps the whole surface. Its vertical frame must be reflected in
	// Metrics.Chrome.
	Popup lipgloss.Style

	Header    lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	NoResults lipgloss.Style
}

// DefaultStyles returns NewStyles for the default renderer.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// NewStyles returns the default palette bound to r, so the color profile of
// r decides which escape sequences are emitted.
func NewStyles(r *lipgloss.Renderer) Styles {
	base := r.NewStyle().Background(lipgloss.Color("236"))
	return Styles{
		Popup:     r.NewStyle(),
		Header:    base.Foreground(lipgloss.Color("245")).Bold(true),
		Item:      base.Foreground(lipgloss.Color("252")),
		Selected:  r.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")),
		NoResults: base.Foreground(lipgloss.Color("243")).Italic(true),
	}
}

func cellStyle(st Styles, selected bool) lipgloss.Style {
	if selected {
		return st.Selected
	}
	return st.Item
}
