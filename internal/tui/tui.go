// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

// Package tui implements the interactive item browser behind `1p browse`:
// a filterable item list, a detail card per item, and clipboard shortcuts
// for passwords and one-time codes.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/w4/1p/internal/service"
)

// Run opens the browser and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, svc service.ItemService, opts service.ListOptions, noColor bool) error {
	m := newBrowseModel(ctx, svc, opts, noColor)

	final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	if fm, ok := final.(browseModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
