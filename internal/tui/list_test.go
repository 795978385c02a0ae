package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w4/1p/backend"
)

func TestListEntry_Title(t *testing.T) {
	e := listEntry{item: backend.ItemSummary{Title: "Ladbrokes "}}
	assert.Equal(t, "Ladbrokes", e.Title())
}

func TestListEntry_Description(t *testing.T) {
	e := listEntry{
		item:  backend.ItemSummary{Title: "SoundCloud", AccountInfo: "jordan"},
		vault: "Personal",
	}
	assert.Equal(t, "Personal · jordan", e.Description())
}

func TestListEntry_DescriptionWithoutAccountInfo(t *testing.T) {
	e := listEntry{
		item:  backend.ItemSummary{Title: "Wi-Fi"},
		vault: "Guest House Network",
	}
	assert.Equal(t, "Guest House Network", e.Description())
}

func TestListEntry_FilterValueCoversTags(t *testing.T) {
	e := listEntry{
		item: backend.ItemSummary{
			Title:       "Router",
			AccountInfo: "admin",
			Tags:        []string{"infra/home"},
		},
	}

	v := e.FilterValue()
	assert.Contains(t, v, "Router")
	assert.Contains(t, v, "admin")
	assert.Contains(t, v, "infra/home")
}

func TestEntriesFrom_ResolvesVaultNames(t *testing.T) {
	entries := entriesFrom(browseListing())
	require.Len(t, entries, 3)

	sc := entries[0].(listEntry)
	assert.Equal(t, "SoundCloud", sc.Title())
	assert.Equal(t, "Personal", sc.vault)

	wifi := entries[2].(listEntry)
	assert.Equal(t, "Guest House Network", wifi.vault)
}

func TestEntriesFrom_UnknownVaultFallsBackToUUID(t *testing.T) {
	listing := browseListing()
	listing.Items = append(listing.Items, backend.ItemSummary{
		UUID:      "item-x",
		VaultUUID: "vault-gone",
		Title:     "Stray",
	})

	entries := entriesFrom(listing)
	stray := entries[len(entries)-1].(listEntry)
	assert.Equal(t, "vault-gone", stray.vault)
}
