package editor

import (
	"slices"

	"github.com/iw2rmb/flourish-complete/popup"
)

// CompletionItem is one candidate offered by a Supplier.
type CompletionItem struct {
	ID     string
	Label  string
	Detail string
	// InsertText replaces the query on accept. Empty means Label.
	InsertText string
}

func (it CompletionItem) text() string {
	if it.InsertText != "" {
		return it.InsertText
	}
	return it.Label
}

// Supplier returns the candidates for query in display order. Ranking and
// filtering are the supplier's concern.
type Supplier interface {
	Complete(query string) []CompletionItem
}

// SupplierFunc adapts a plain function to Supplier.
type SupplierFunc func(query string) []CompletionItem

func (f SupplierFunc) Complete(query string) []CompletionItem { return f(query) }

// CompletionState is a snapshot of the completion session.
type CompletionState struct {
	Visible bool
	// Anchor is the document offset where the query starts.
	Anchor   int
	Query    string
	Items    []CompletionItem
	Selected int
}

func cloneCompletionState(state CompletionState) CompletionState {
	state.Items = slices.Clone(state.Items)
	return state
}

// completion holds the live session and its popup surface.
type completion struct {
	state   CompletionState
	surface *popup.Surface

	clicked int
	hovered int
}

func newCompletion() *completion {
	return &completion{clicked: -1, hovered: -1}
}

func (c *completion) onClick(index int) { c.clicked = index }

func (c *completion) onHover(index int) { c.hovered = index }

// takeEvents returns and clears the pointer events recorded by the popup.
func (c *completion) takeEvents() (clicked, hovered int) {
	clicked, hovered = c.clicked, c.hovered
	c.clicked, c.hovered = -1, -1
	return clicked, hovered
}

func (c *completion) composite(base string) string {
	if !c.state.Visible || c.surface == nil {
		return base
	}
	return c.surface.Composite(base)
}

func (c *completion) move(delta int) {
	n := len(c.state.Items)
	if n == 0 {
		return
	}
	sel := c.state.Selected
	if sel < 0 {
		sel = 0
		if delta < 0 {
			sel = n - 1
		}
		c.state.Selected = sel
		return
	}
	c.state.Selected = ((sel+delta)%n + n) % n
}

// CompletionState returns a snapshot of the current session.
func (m Model) CompletionState() CompletionState {
	return cloneCompletionState(m.comp.state)
}

// Completing reports whether the popup is open.
func (m Model) Completing() bool { return m.comp.state.Visible }

// TriggerCompletion opens the popup at the word before the caret.
func (m Model) TriggerCompletion() Model {
	m.openCompletion()
	return m
}

// DismissCompletion closes the popup without editing the document.
func (m Model) DismissCompletion() Model {
	m.closeCompletion()
	return m
}

func (m *Model) openCompletion() {
	if m.cfg.Supplier == nil || !m.focused {
		return
	}
	m.closeCompletion()

	anchor := m.buf.Offset(m.buf.WordStart(m.buf.Cursor()))
	m.comp.state = CompletionState{Visible: true, Anchor: anchor}
	m.comp.surface = popup.Create(m.popupOptions()...)
	m.queryCompletion(m.SelectionHead())
	m.cfg.Logger.Debug("completion opened", "anchor", anchor, "query", m.comp.state.Query)
	m.renderCompletion()
}

func (m *Model) closeCompletion() {
	c := m.comp
	if !c.state.Visible {
		return
	}
	if c.surface != nil {
		c.surface.Destroy()
	}
	c.surface = nil
	c.state = CompletionState{}
	c.takeEvents()
	m.cfg.Logger.Debug("completion closed")
}

// syncCompletion follows document and caret changes while the popup is open.
// Moving the caret before the anchor or off its line closes the popup.
func (m *Model) syncCompletion() {
	st := &m.comp.state
	if !st.Visible {
		return
	}
	head := m.SelectionHead()
	if head < st.Anchor || m.buf.PosAt(st.Anchor).Row != m.buf.Cursor().Row {
		m.closeCompletion()
		return
	}
	if query := m.buf.TextRange(st.Anchor, head); query != st.Query {
		m.queryCompletion(head)
	}
	m.renderCompletion()
}

func (m *Model) queryCompletion(head int) {
	st := &m.comp.state
	st.Query = m.buf.TextRange(st.Anchor, head)
	st.Items = m.cfg.Supplier.Complete(st.Query)
	st.Selected = popup.NoSelection
	if len(st.Items) > 0 {
		st.Selected = 0
	}
}

func (m *Model) renderCompletion() {
	c := m.comp
	if !c.state.Visible || c.surface == nil {
		return
	}
	session := popup.Session[CompletionItem]{
		AnchorPos:  c.state.Anchor,
		Candidates: c.state.Items,
		Selected:   c.state.Selected,
		NoResults:  m.cfg.NoResultsLabel,
		OnClick:    c.onClick,
		OnHover:    c.onHover,
	}
	handler := popup.Handler[CompletionItem]{View: m.cfg.CompletionView}
	if err := popup.Render(c.surface, m, session, handler); err != nil {
		m.cfg.Logger.Warn("completion popup render failed", "err", err)
	}
}

// acceptCompletion replaces the query with item index and closes the popup.
func (m *Model) acceptCompletion(index int) bool {
	st := m.comp.state
	if !st.Visible || index < 0 || index >= len(st.Items) {
		return false
	}
	item := st.Items[index]
	head := m.SelectionHead()
	m.closeCompletion()
	m.buf.Replace(st.Anchor, head, item.text())
	m.cfg.Logger.Debug("completion accepted", "id", item.ID, "query", st.Query)
	return true
}

func (m *Model) popupOptions() []popup.Option {
	opts := []popup.Option{popup.WithLogger(m.cfg.Logger)}
	if m.cfg.PopupMetrics != nil {
		opts = append(opts, popup.WithMetrics(*m.cfg.PopupMetrics))
	}
	if m.cfg.PopupStyles != nil {
		opts = append(opts, popup.WithStyles(*m.cfg.PopupStyles))
	}
	return opts
}
