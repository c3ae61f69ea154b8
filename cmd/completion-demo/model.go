package main

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/flourish-complete/buffer"
	"github.com/iw2rmb/flourish-complete/editor"
	"github.com/iw2rmb/flourish-complete/internal/config"
	"github.com/iw2rmb/flourish-complete/popup"
)

const statusHeight = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

const defaultText = `Completion popup demo

Start typing a Go keyword below, or press ctrl+space.
↑/↓ select, enter/tab accept, esc dismiss, ctrl+c quit.

func main() {
	
}`

type model struct {
	editor editor.Model
	width  int
}

func newModel(cfg *config.Config, words []string, logger *slog.Logger) model {
	m := model{editor: editor.New(editorConfig(cfg, words, logger))}
	if cfg.Editor.Text == "" {
		// Park the caret inside the function body.
		m.editor.Buffer().SetCursor(buffer.Pos{Row: strings.Count(defaultText, "\n") - 1, Col: 1})
	}
	return m
}

// editorConfig maps the demo config onto an editor configuration.
func editorConfig(cfg *config.Config, words []string, logger *slog.Logger) editor.Config {
	metrics := cfg.Metrics()
	view := popup.View[editor.CompletionItem]{
		Width:      cfg.Popup.Width,
		Height:     cfg.Popup.Height,
		MaxVisible: cfg.Popup.MaxVisible,
		Horizontal: cfg.Popup.Horizontal,
	}
	if cfg.Popup.Header != "" {
		header := cfg.Popup.Header
		view.Header = &popup.Header{Component: popup.HeaderFunc(func(int) string { return " " + header })}
	}

	keys := editor.DefaultCompletionKeyMap()
	if cfg.Popup.Horizontal {
		keys = editor.HorizontalCompletionKeyMap()
		// Strip cells are capped at 12 columns.
		view.Width = min(max(cfg.Popup.Width, 0), 12)
	}

	text := cfg.Editor.Text
	if text == "" {
		text = defaultText
	}

	return editor.Config{
		Text:             text,
		Style:            editor.DefaultStyle(),
		Clipboard:        editor.SystemClipboard{},
		Supplier:         newWordSupplier(words),
		CompletionKeyMap: keys,
		CompletionView:   view,
		AutoTrigger:      cfg.Editor.AutoTrigger,
		NoResultsLabel:   cfg.Popup.NoResults,
		PopupMetrics:     &metrics,
		Logger:           logger,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-statusHeight, 0))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.status()
}

func (m model) status() string {
	state := m.editor.CompletionState()
	s := "completion closed"
	if state.Visible {
		s = fmt.Sprintf("query %q | %d candidates | selected %d", state.Query, len(state.Items), state.Selected)
	}
	return statusStyle.MaxWidth(max(m.width, 1)).Render(s)
}
