// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/w4/1p/backend"
	"github.com/w4/1p/internal/display"
	"github.com/w4/1p/internal/service"
)

type viewState int

const (
	stateLoading viewState = iota
	stateList
	stateDetail
)

type browseModel struct {
	ctx    context.Context
	svc    service.ItemService
	opts   service.ListOptions
	render *display.Renderer
	clip   func(text string) error

	state   viewState
	list    list.Model
	spinner spinner.Model
	detail  *backend.Item
	status  string
	err     error
}

func newBrowseModel(ctx context.Context, svc service.ItemService, opts service.ListOptions, noColor bool) browseModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browseModel{
		ctx:     ctx,
		svc:     svc,
		opts:    opts,
		render:  display.New(display.NewStyles(noColor)),
		clip:    clipboard.WriteAll,
		state:   stateLoading,
		list:    newItemList(),
		spinner: s,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadItems())
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		// while the filter input is open the list owns every keystroke
		if m.state == stateList && m.list.FilterState() == list.Filtering {
			break
		}

		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit

		case key.Matches(msg, keys.enter):
			if m.state != stateList {
				break
			}
			entry, ok := m.list.SelectedItem().(listEntry)
			if !ok {
				break
			}
			m.state = stateLoading
			return m, tea.Batch(m.spinner.Tick, m.cmdLoadDetail(entry.item.UUID))

		case key.Matches(msg, keys.esc):
			if m.state == stateDetail {
				m.state = stateList
				m.detail = nil
				m.status = ""
				return m, nil
			}

		case key.Matches(msg, keys.copyPassword):
			if m.state == stateDetail {
				return m, m.cmdCopyPassword()
			}

		case key.Matches(msg, keys.copyTOTP):
			if m.state == stateDetail {
				return m, m.cmdCopyTOTP()
			}
		}

	case itemsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.state = stateList
		return m, m.list.SetItems(entriesFrom(msg.listing))

	case detailLoadedMsg:
		if msg.err != nil {
			m.state = stateList
			m.status = errorStyle.Render(msg.err.Error())
			return m, clearStatusAfter()
		}
		m.state = stateDetail
		m.detail = msg.item
		return m, nil

	case copiedMsg:
		m.status = statusStyle.Render(msg.what + " copied to clipboard")
		return m, clearStatusAfter()

	case copyFailedMsg:
		m.status = errorStyle.Render("copy failed: " + msg.err.Error())
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.state == stateList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browseModel) View() string {
	switch m.state {
	case stateLoading:
		return appStyle.Render(m.spinner.View() + " loading items...")
	case stateDetail:
		return appStyle.Render(m.detailView())
	default:
		view := m.list.View()
		if m.status != "" {
			view += "\n" + m.status
		}
		return appStyle.Render(view)
	}
}

func (m browseModel) detailView() string {
	var sb strings.Builder
	if err := m.render.Card(&sb, m.detail); err != nil {
		return errorStyle.Render(err.Error())
	}

	out := sb.String()
	if m.status != "" {
		out += m.status + "\n"
	}
	out += helpStyle.Render("c copy password  t copy totp  esc back  q quit")
	return out
}

func (m browseModel) cmdLoadItems() tea.Cmd {
	return func() tea.Msg {
		listing, err := m.svc.Overview(m.ctx, m.opts)
		return itemsLoadedMsg{listing: listing, err: err}
	}
}

func (m browseModel) cmdLoadDetail(uuid string) tea.Cmd {
	return func() tea.Msg {
		item, err := m.svc.Get(m.ctx, uuid)
		return detailLoadedMsg{item: item, err: err}
	}
}

var errNoPassword = errors.New("item has no password field")

func (m browseModel) cmdCopyPassword() tea.Cmd {
	item := m.detail
	return func() tea.Msg {
		password, ok := item.FieldByKind(backend.FieldKindPassword)
		if !ok {
			return copyFailedMsg{err: errNoPassword}
		}
		if err := m.clip(password.Value); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{what: "password"}
	}
}

func (m browseModel) cmdCopyTOTP() tea.Cmd {
	uuid := m.detail.UUID
	return func() tea.Msg {
		code, err := m.svc.TOTP(m.ctx, uuid)
		if err != nil {
			return copyFailedMsg{err: err}
		}
		if err := m.clip(code); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{what: "totp code"}
	}
}
