package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"github.com/w4/1p/backend"
	"github.com/w4/1p/internal/service"
)

// listEntry adapts an item summary to the bubbles list. The vault name is
// carried alongside so the description line can show where the item lives.
type listEntry struct {
	item  backend.ItemSummary
	vault string
}

func (e listEntry) Title() string { return strings.TrimSpace(e.item.Title) }

func (e listEntry) Description() string {
	if info := strings.TrimSpace(e.item.AccountInfo); info != "" {
		return fmt.Sprintf("%s · %s", e.vault, info)
	}
	return e.vault
}

// FilterValue folds in the account info and tags so fuzzy filtering matches
// more than the title.
func (e listEntry) FilterValue() string {
	parts := []string{e.item.Title, e.item.AccountInfo}
	parts = append(parts, e.item.Tags...)
	return strings.Join(parts, " ")
}

func newItemList() list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "1p"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	return l
}

func entriesFrom(listing service.Listing) []list.Item {
	names := make(map[string]string, len(listing.Vaults))
	for _, v := range listing.Vaults {
		names[v.UUID] = v.Name
	}

	entries := make([]list.Item, 0, len(listing.Items))
	for _, item := range listing.Items {
		vault, ok := names[item.VaultUUID]
		if !ok {
			vault = item.VaultUUID
		}
		entries = append(entries, listEntry{item: item, vault: vault})
	}
	return entries
}
