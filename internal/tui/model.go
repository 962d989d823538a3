// Package tui is the terminal rendition of the dashboard: the same Empty to
// Chart view driven by the Bubble Tea event loop.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/zoomie/transations/internal/chart"
	"github.com/zoomie/transations/internal/models"
	"github.com/zoomie/transations/internal/view"
)

// Placeholder is shown until the transaction history arrives.
const Placeholder = "[ Connect a bank account ]"

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// loadedMsg carries the result of the single fetch started by Init.
type loadedMsg struct {
	resp *models.APIResponse
	err  error
}

type Model struct {
	fetcher view.Fetcher
	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger

	state    view.State
	err      error
	width    int
	height   int
	quitting bool
}

// New returns a model in the Empty state. The fetch runs under ctx and is
// cancelled when the user quits.
func New(ctx context.Context, fetcher view.Fetcher, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		fetcher: fetcher,
		ctx:     ctx,
		cancel:  cancel,
		log:     log,
		width:   defaultWidth,
		height:  defaultHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch
}

func (m Model) fetch() tea.Msg {
	resp, err := m.fetcher.FetchTransactions(m.ctx)
	return loadedMsg{resp: resp, err: err}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case loadedMsg:
		if m.quitting {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.log.Warn("failed to load transactions", zap.Error(msg.err))
			return m, nil
		}
		m.state = m.state.Apply(msg.resp)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state.Kind() == view.Chart {
		return chart.RenderText(m.state.Points(), m.width, m.height-1) + "\n"
	}
	return Placeholder + "\n\nq: quit\n"
}

// State is the currently displayed state.
func (m Model) State() view.State {
	return m.state
}

// Err is the fetch failure, if any. It is never shown on screen.
func (m Model) Err() error {
	return m.err
}
