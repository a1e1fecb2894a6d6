package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/heartmarshall/bireader/internal/lookup"
)

func (m *model) handleDocLoaded(msg docLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error("open translation failed", slog.String("error", msg.err.Error()))
		m.status = "Could not open translation"
		return nil
	}

	m.doc = msg.doc
	m.screen = screenDetail
	m.status = ""
	m.vp.SetYOffset(0)
	m.relayout()
	return nil
}

// relayout rebuilds the page for the current width. Any hover ends since
// word positions move.
func (m *model) relayout() {
	m.leave()
	if m.doc == nil {
		m.page = nil
		return
	}

	m.page = layoutPage(m.doc.Pairs, m.contentWidth())
	plain := make([]string, len(m.page.lines))
	for i := range m.page.lines {
		plain[i] = m.page.plain(i)
	}
	m.vp.SetContent(strings.Join(plain, "\n"))
}

func (m *model) leave() {
	if m.lookup.Key() != "" {
		m.lookup.HoverLeave()
	}
	m.wordCursor = -1
	m.mouseHover = false
}

func (m *model) closeDetail() {
	m.leave()
	m.doc = nil
	m.page = nil
	m.screen = screenList
}

func (m *model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.page == nil {
		m.closeDetail()
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.closeDetail()
		return m, nil
	case "esc":
		if m.wordCursor >= 0 || m.lookup.Key() != "" {
			m.leave()
			return m, nil
		}
		m.closeDetail()
		return m, nil
	case "right", "l", "tab":
		if m.wordCursor < 0 {
			return m, m.hoverSpot(m.firstVisibleSpot())
		}
		return m, m.hoverSpot(m.wordCursor + 1)
	case "left", "h", "shift+tab":
		if m.wordCursor < 0 {
			return m, m.hoverSpot(m.firstVisibleSpot())
		}
		return m, m.hoverSpot(m.wordCursor - 1)
	case "down", "j":
		if m.wordCursor < 0 {
			return m, m.hoverSpot(m.firstVisibleSpot())
		}
		return m, m.hoverSpot(m.page.vertical(m.wordCursor, 1))
	case "up", "k":
		if m.wordCursor < 0 {
			return m, m.hoverSpot(m.firstVisibleSpot())
		}
		return m, m.hoverSpot(m.page.vertical(m.wordCursor, -1))
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *model) handleDetailMouse(msg tea.MouseMsg) tea.Cmd {
	if m.page == nil {
		return nil
	}

	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return cmd
	}
	if msg.Action != tea.MouseActionMotion {
		return nil
	}

	row := msg.Y - headerHeight
	i := -1
	if row >= 0 && row < m.vp.Height {
		i = m.page.spotAt(m.vp.YOffset+row, msg.X)
	}
	if i < 0 {
		if m.mouseHover {
			m.leave()
		}
		return nil
	}
	if i == m.wordCursor && m.lookup.Key() != "" {
		return nil
	}

	m.wordCursor = i
	m.mouseHover = true
	req := m.lookup.HoverEnter(m.page.spots[i].key, lookup.Point{X: msg.X, Y: row}, m.vp.YOffset)
	return lookupCmd(m.api, req)
}

// hoverSpot moves the keyboard cursor to spot i and starts a lookup for it.
func (m *model) hoverSpot(i int) tea.Cmd {
	if len(m.page.spots) == 0 || i < 0 {
		return nil
	}
	i = min(i, len(m.page.spots)-1)
	if i == m.wordCursor && m.lookup.Key() != "" {
		return nil
	}

	s := m.page.spots[i]
	m.wordCursor = i
	m.mouseHover = false
	m.ensureVisible(s.line)

	req := m.lookup.HoverEnter(s.key, lookup.Point{X: s.center(), Y: s.line - m.vp.YOffset}, m.vp.YOffset)
	return lookupCmd(m.api, req)
}

func (m *model) firstVisibleSpot() int {
	for i, s := range m.page.spots {
		if s.line >= m.vp.YOffset {
			return i
		}
	}
	return 0
}

func (m *model) ensureVisible(ln int) {
	switch {
	case ln < m.vp.YOffset:
		m.vp.SetYOffset(ln)
	case ln >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(ln - m.vp.Height + 1)
	}
}

// popupBox renders the active popup. top is in content lines.
func (m *model) popupBox() (rows []string, left, top, width int, ok bool) {
	p, visible := m.lookup.Popup()
	if !visible {
		return nil, 0, 0, 0, false
	}

	var b strings.Builder
	b.WriteString(popupTitleStyle.Render(p.Key))
	for i, meaning := range p.Meanings {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(fmt.Sprintf("%d. %s", i+1, meaning), maxPopupWidth))
	}
	box := popupStyle.Render(b.String())

	width = lipgloss.Width(box)
	left = lookup.CenterLeft(p.Anchor.X, width)
	left = max(0, min(left, m.width-width))
	return strings.Split(box, "\n"), left, p.Anchor.Y, width, true
}

func (m *model) detailView() string {
	var b strings.Builder

	title := "Translation"
	if m.doc != nil {
		t := m.doc.Translation
		title = fmt.Sprintf("#%d · %s", t.ID, t.Language)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	rows, left, top, width, hasPopup := m.popupBox()
	for r := 0; r < m.vp.Height; r++ {
		ln := m.vp.YOffset + r
		var l line
		if m.page != nil && ln < len(m.page.lines) {
			l = m.page.lines[ln]
		}

		if hasPopup && ln >= top && ln < top+len(rows) {
			before, after := cut(l, left, left+width)
			b.WriteString(renderLine(before, m.wordCursor))
			b.WriteString(rows[ln-top])
			b.WriteString(renderLine(after, m.wordCursor))
		} else {
			b.WriteString(renderLine(l, m.wordCursor))
		}
		b.WriteString("\n")
	}

	status := m.status
	if m.lookup.State() == lookup.Pending {
		status = "Looking up " + m.lookup.Key() + "…"
		b.WriteString(metaStyle.Render(status))
	} else if status != "" {
		b.WriteString(noticeStyle.Render(status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ word · ↑/↓ line · pgup/pgdn scroll · esc back · q list"))
	return b.String()
}
