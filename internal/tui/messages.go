package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/w4/1p/backend"
	"github.com/w4/1p/internal/service"
)

type itemsLoadedMsg struct {
	listing service.Listing
	err     error
}

type detailLoadedMsg struct {
	item *backend.Item
	err  error
}

type copiedMsg struct {
	what string
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

// statusLinger is how long copy confirmations stay on screen.
const statusLinger = 3 * time.Second

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusLinger, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
