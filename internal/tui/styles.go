package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	metaStyle     = lipgloss.NewStyle().Faint(true)

	wordStyle   = lipgloss.NewStyle()
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	targetStyle = lipgloss.NewStyle().Faint(true).Italic(true)

	popupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(0, 1)
	popupTitleStyle = lipgloss.NewStyle().Bold(true)
)

// maxPopupWidth bounds the width of a meaning line inside the popup.
const maxPopupWidth = 40

func renderLine(l line, cursor int) string {
	var b strings.Builder
	for _, s := range l {
		switch {
		case s.spot >= 0 && s.spot == cursor:
			b.WriteString(cursorStyle.Render(s.text))
		case s.kind == segWord:
			b.WriteString(wordStyle.Render(s.text))
		case s.kind == segTarget:
			b.WriteString(targetStyle.Render(s.text))
		default:
			b.WriteString(s.text)
		}
	}
	return b.String()
}
