// Package tui is the terminal reader: a list of translations, a compose
// view, and an interleaved detail view with hover lookups.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/bireader/internal/domain"
	"github.com/heartmarshall/bireader/internal/interleave"
	"github.com/heartmarshall/bireader/internal/lookup"
)

// API is the subset of the HTTP client the reader uses.
type API interface {
	List(ctx context.Context) ([]domain.TranslationRecord, error)
	Translate(ctx context.Context, text string) (*domain.TranslationRecord, error)
	ImportURL(ctx context.Context, rawURL string) (*domain.TranslationRecord, error)
	Delete(ctx context.Context, id int64) error
	Interleaved(ctx context.Context, id int64, withDefinitions bool) (*interleave.Document, error)
	Definitions(ctx context.Context, word string) ([]string, error)
}

// Config wires runtime options into the reader.
type Config struct {
	API       API
	Logger    *slog.Logger
	PopupGap  int
	WrapWidth int
}

type screen int

const (
	screenList screen = iota
	screenCompose
	screenDetail
)

const (
	headerHeight = 2
	footerHeight = 2

	defaultWidth  = 80
	defaultHeight = 24
)

const (
	emptyInputNotice = "Please enter text to translate"
	emptyURLNotice   = "Please enter a URL to import"
)

type model struct {
	api    API
	log    *slog.Logger
	screen screen

	width     int
	height    int
	wrapWidth int

	// list
	records []domain.TranslationRecord
	cursor  int

	// compose
	input     textarea.Model
	spinner   spinner.Model
	notice    string
	isLoading bool

	// detail
	doc        *interleave.Document
	page       *page
	vp         viewport.Model
	lookup     *lookup.Controller
	wordCursor int
	mouseHover bool

	status string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(cfg Config) tea.Model {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	input := textarea.New()
	input.Placeholder = "Paste or type the text to translate, or a URL to import…"
	input.CharLimit = domain.MaxTextLength
	input.ShowLineNumbers = false

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	vp := viewport.New(defaultWidth, defaultHeight-headerHeight-footerHeight)
	vp.MouseWheelEnabled = true

	return &model{
		api:        cfg.API,
		log:        logger.With("component", "tui"),
		screen:     screenList,
		width:      defaultWidth,
		height:     defaultHeight,
		wrapWidth:  cfg.WrapWidth,
		input:      input,
		spinner:    spin,
		vp:         vp,
		lookup:     lookup.NewController(logger, lookup.Positioner{Gap: cfg.PopupGap}),
		wordCursor: -1,
	}
}

func (m *model) Init() tea.Cmd {
	return loadListCmd(m.api)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.isLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listLoadedMsg:
		return m, m.handleListLoaded(msg)
	case translatedMsg:
		return m, m.handleTranslated(msg)
	case deletedMsg:
		return m, m.handleDeleted(msg)
	case docLoadedMsg:
		return m, m.handleDocLoaded(msg)
	case lookupDoneMsg:
		m.lookup.Resolve(msg.resp)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenCompose:
			return m.handleComposeKey(msg)
		case screenDetail:
			return m.handleDetailKey(msg)
		default:
			return m.handleListKey(msg)
		}

	case tea.MouseMsg:
		if m.screen == screenDetail {
			return m, m.handleDetailMouse(msg)
		}
		return m, nil
	}

	if m.screen == screenCompose {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) View() string {
	switch m.screen {
	case screenCompose:
		return m.composeView()
	case screenDetail:
		return m.detailView()
	default:
		return m.listView()
	}
}

func (m *model) resize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
	m.input.SetWidth(m.width - 2)
	m.input.SetHeight(max(3, m.bodyHeight()-2))
	m.vp.Width = m.width
	m.vp.Height = m.bodyHeight()
	m.relayout()
}

func (m *model) bodyHeight() int {
	return max(1, m.height-headerHeight-footerHeight)
}

func (m *model) contentWidth() int {
	w := m.width - 1
	if m.wrapWidth > 0 && m.wrapWidth < w {
		w = m.wrapWidth
	}
	return w
}
