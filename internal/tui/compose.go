package tui

import (
	"errors"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/bireader/internal/domain"
)

func (m *model) handleComposeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.isLoading {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.notice = ""
		m.screen = screenList
		return m, nil
	case "ctrl+s":
		return m, m.submit()
	case "ctrl+u":
		return m, m.submitURL()
	}

	m.notice = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a translation. Blank text is refused locally.
func (m *model) submit() tea.Cmd {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		m.notice = emptyInputNotice
		return nil
	}

	m.notice = ""
	m.isLoading = true
	return tea.Batch(m.spinner.Tick, translateCmd(m.api, text))
}

// submitURL asks the server to fetch the page at the URL in the input and
// translate its text.
func (m *model) submitURL() tea.Cmd {
	rawURL := strings.TrimSpace(m.input.Value())
	if rawURL == "" {
		m.notice = emptyURLNotice
		return nil
	}

	m.notice = ""
	m.isLoading = true
	return tea.Batch(m.spinner.Tick, importCmd(m.api, rawURL))
}

func (m *model) handleTranslated(msg translatedMsg) tea.Cmd {
	m.isLoading = false

	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrEmptyInput) {
			m.notice = emptyInputNotice
			return nil
		}
		m.log.Error("translate failed", slog.String("error", msg.err.Error()))
		return nil
	}

	m.input.Reset()
	m.input.Blur()
	m.records = append([]domain.TranslationRecord{*msg.rec}, m.records...)
	m.cursor = 0
	m.screen = screenList
	return openCmd(m.api, msg.rec.ID)
}

func (m *model) composeView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New translation"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.isLoading:
		b.WriteString(m.spinner.View() + " Translating…")
	case m.notice != "":
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+s translate · ctrl+u import URL · esc back"))
	return b.String()
}
