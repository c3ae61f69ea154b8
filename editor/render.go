package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) renderContent() string {
	cur := m.buf.Cursor()
	st := m.cfg.Style

	out := make([]string, m.buf.LineCount())
	for row := range out {
		clusters := m.buf.Clusters(row)
		if !m.focused || row != cur.Row {
			out[row] = renderRun(st.Text, clusters)
			continue
		}

		var sb strings.Builder
		sb.WriteString(renderRun(st.Text, clusters[:cur.Col]))
		if cur.Col < len(clusters) {
			sb.WriteString(st.Cursor.Render(displayCluster(clusters[cur.Col])))
			sb.WriteString(renderRun(st.Text, clusters[cur.Col+1:]))
		} else {
			sb.WriteString(st.Cursor.Render(" "))
		}
		out[row] = sb.String()
	}
	return strings.Join(out, "\n")
}

func renderRun(style lipgloss.Style, clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(displayCluster(c))
	}
	return style.Render(sb.String())
}

// displayCluster replaces clusters whose drawn width differs from their
// measured width.
func displayCluster(c string) string {
	if c == "\t" {
		return " "
	}
	if len(c) == 1 && (c[0] < 0x20 || c[0] == 0x7f) {
		return "?"
	}
	return c
}
