package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
)

func (m *model) handleListLoaded(msg listLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error("load translations failed", slog.String("error", msg.err.Error()))
		m.status = "Could not load translations"
		return nil
	}

	m.records = msg.records
	m.cursor = min(m.cursor, max(0, len(m.records)-1))
	m.status = ""
	return nil
}

func (m *model) handleDeleted(msg deletedMsg) tea.Cmd {
	if msg.err != nil {
		m.log.Error("delete translation failed",
			slog.Int64("translation_id", msg.id),
			slog.String("error", msg.err.Error()),
		)
		m.status = "Could not delete translation"
		return nil
	}

	for i, r := range m.records {
		if r.ID == msg.id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			break
		}
	}
	m.cursor = min(m.cursor, max(0, len(m.records)-1))
	m.status = ""
	return nil
}

func (m *model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.cursor = max(0, m.cursor-1)
	case "down", "j":
		m.cursor = min(max(0, len(m.records)-1), m.cursor+1)
	case "r":
		return m, loadListCmd(m.api)
	case "n":
		m.screen = screenCompose
		m.notice = ""
		return m, m.input.Focus()
	case "enter":
		if len(m.records) == 0 {
			return m, nil
		}
		return m, openCmd(m.api, m.records[m.cursor].ID)
	case "d":
		if len(m.records) == 0 {
			return m, nil
		}
		return m, deleteCmd(m.api, m.records[m.cursor].ID)
	}
	return m, nil
}

func (m *model) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bireader · translations"))
	b.WriteString("\n\n")

	height := m.bodyHeight()
	switch {
	case len(m.records) == 0:
		b.WriteString(metaStyle.Render("No translations yet. Press n to add one."))
		b.WriteString(strings.Repeat("\n", height))
	default:
		start := max(0, m.cursor-height+1)
		end := min(len(m.records), start+height)
		for i := start; i < end; i++ {
			r := m.records[i]
			meta := fmt.Sprintf("  #%d %s %s", r.ID, r.Language, r.CreatedAt.Format("2006-01-02"))
			room := max(10, m.width-len(meta)-2)
			preview := truncate.StringWithTail(firstLine(r.OriginalText), uint(room), "…")

			row := "  " + preview
			if i == m.cursor {
				row = selectedStyle.Render("> " + preview)
			}
			b.WriteString(row + metaStyle.Render(meta) + "\n")
		}
		b.WriteString(strings.Repeat("\n", height-(end-start)))
	}

	b.WriteString(m.footer("enter open · n new · d delete · r refresh · q quit"))
	return b.String()
}

func (m *model) footer(help string) string {
	status := ""
	if m.status != "" {
		status = noticeStyle.Render(m.status)
	}
	return status + "\n" + helpStyle.Render(help)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
