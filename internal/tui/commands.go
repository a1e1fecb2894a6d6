package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/bireader/internal/domain"
	"github.com/heartmarshall/bireader/internal/interleave"
	"github.com/heartmarshall/bireader/internal/lookup"
)

type listLoadedMsg struct {
	records []domain.TranslationRecord
	err     error
}

type translatedMsg struct {
	rec *domain.TranslationRecord
	err error
}

type deletedMsg struct {
	id  int64
	err error
}

type docLoadedMsg struct {
	doc *interleave.Document
	err error
}

type lookupDoneMsg struct {
	resp lookup.Response
}

func loadListCmd(api API) tea.Cmd {
	return func() tea.Msg {
		records, err := api.List(context.Background())
		return listLoadedMsg{records: records, err: err}
	}
}

func translateCmd(api API, text string) tea.Cmd {
	return func() tea.Msg {
		rec, err := api.Translate(context.Background(), text)
		return translatedMsg{rec: rec, err: err}
	}
}

func importCmd(api API, rawURL string) tea.Cmd {
	return func() tea.Msg {
		rec, err := api.ImportURL(context.Background(), rawURL)
		return translatedMsg{rec: rec, err: err}
	}
}

func deleteCmd(api API, id int64) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{id: id, err: api.Delete(context.Background(), id)}
	}
}

func openCmd(api API, id int64) tea.Cmd {
	return func() tea.Msg {
		doc, err := api.Interleaved(context.Background(), id, false)
		return docLoadedMsg{doc: doc, err: err}
	}
}

func lookupCmd(api API, req lookup.Request) tea.Cmd {
	return func() tea.Msg {
		return lookupDoneMsg{resp: lookup.Fetch(context.Background(), api, req)}
	}
}
