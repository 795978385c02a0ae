package display

import "github.com/charmbracelet/lipgloss"

// Styles is the colour palette shared by every rendering helper. The zero
// value renders everything unstyled.
type Styles struct {
	Vault       lipgloss.Style // vault names in the listing tree
	AccountInfo lipgloss.Style // usernames / email annotations
	UUID        lipgloss.Style // item and vault identifiers
	ItemTitle   lipgloss.Style // search result headers

	Card lipgloss.Style // bordered box around item details
	Cell lipgloss.Style // table cell padding
}

// NewStyles builds the palette. With noColor set only the structural styles
// (borders, padding) survive, keeping output grep-friendly.
func NewStyles(noColor bool) Styles {
	s := Styles{
		Card: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1),
		Cell: lipgloss.NewStyle().Padding(0, 1),
	}
	if noColor {
		return s
	}

	s.Vault = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	s.AccountInfo = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	s.UUID = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	s.ItemTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	return s
}
