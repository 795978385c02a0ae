// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/w4/1p/backend"
)

// gap between a field name and its right-aligned value
const cardGap = 2

// Card renders the full item as bordered boxes: the title and top-level
// fields first, then one box per non-empty section.
func (r *Renderer) Card(w io.Writer, item *backend.Item) error {
	if err := r.box(w, item.Title, item.Fields); err != nil {
		return err
	}

	for _, section := range item.Sections {
		if len(section.Fields) == 0 {
			continue
		}
		if err := r.box(w, section.Name, section.Fields); err != nil {
			return err
		}
	}
	return nil
}

// box writes a double-bordered card: the heading centered, then one row per
// field with the name left-aligned and the value right-aligned. An empty
// heading is skipped, matching unnamed sections.
func (r *Renderer) box(w io.Writer, heading string, fields []backend.Field) error {
	width := lipgloss.Width(heading)
	for _, f := range fields {
		if fw := lipgloss.Width(f.Name) + cardGap + lipgloss.Width(f.Value); fw > width {
			width = fw
		}
	}

	lines := make([]string, 0, len(fields)+1)
	if heading != "" {
		pad := width - lipgloss.Width(heading)
		left := pad / 2
		lines = append(lines, strings.Repeat(" ", left)+heading+strings.Repeat(" ", pad-left))
	}
	for _, f := range fields {
		pad := width - lipgloss.Width(f.Name) - lipgloss.Width(f.Value)
		lines = append(lines, f.Name+strings.Repeat(" ", pad)+f.Value)
	}

	if _, err := fmt.Fprintln(w, r.styles.Card.Render(strings.Join(lines, "\n"))); err != nil {
		return fmt.Errorf("write item card: %w", err)
	}
	return nil
}
