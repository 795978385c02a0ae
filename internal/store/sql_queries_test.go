// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w4/1p/backend"
)

func Test_buildInsertVaultQuery_SQLContainsParts(t *testing.T) {
	vault := backend.Vault{UUID: "vault-personal", Name: "Personal"}

	query, args, err := buildInsertVaultQuery(3, vault)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into vaults")
	require.Contains(t, q, "uuid")
	require.Contains(t, q, "name")
	require.Contains(t, q, "position")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")

	require.Equal(t, []any{"vault-personal", "Personal", 3}, args)
}

func Test_buildInsertItemQuery_SQLContainsParts(t *testing.T) {
	item := backend.ItemSummary{
		UUID:        "item-sc",
		VaultUUID:   "vault-personal",
		Title:       "SoundCloud",
		AccountInfo: "jordan",
	}

	query, args, err := buildInsertItemQuery(0, item, `["https://soundcloud.com"]`, `["social"]`)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into items")

	// Check that all expected columns are present.
	cols := []string{
		"uuid",
		"vault_uuid",
		"title",
		"account_info",
		"urls",
		"tags",
		"position",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}

	require.Equal(t, []any{
		"item-sc",
		"vault-personal",
		"SoundCloud",
		"jordan",
		`["https://soundcloud.com"]`,
		`["social"]`,
		0,
	}, args)
}

func Test_buildUpsertMetaQuery(t *testing.T) {
	query, args, err := buildUpsertMetaQuery("fetched_at", "2026-08-22T10:00:00Z")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into cache_meta")
	require.Contains(t, q, "on conflict")
	require.Contains(t, q, "excluded.value")

	require.Equal(t, []any{"fetched_at", "2026-08-22T10:00:00Z"}, args)
}

func Test_buildSelectVaultsQuery_OrdersByPosition(t *testing.T) {
	query, args, err := buildSelectVaultsQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from vaults")
	require.Contains(t, q, "order by position")

	assert.Empty(t, args)
}

func Test_buildSelectItemsQuery_OrdersByPosition(t *testing.T) {
	query, args, err := buildSelectItemsQuery()
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from items")
	require.Contains(t, q, "order by position")
	for _, c := range []string{"uuid", "vault_uuid", "title", "account_info", "urls", "tags"} {
		require.Contains(t, q, c)
	}

	assert.Empty(t, args)
}

func Test_buildSelectMetaQuery(t *testing.T) {
	t.Run("all keys", func(t *testing.T) {
		query, args, err := buildSelectMetaQuery()
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "from cache_meta")
		require.NotContains(t, q, "where")
		assert.Empty(t, args)
	})

	t.Run("named keys", func(t *testing.T) {
		query, args, err := buildSelectMetaQuery("fetched_at")
		require.NoError(t, err)

		q := strings.ToLower(query)
		require.Contains(t, q, "where")
		require.Contains(t, q, "key in (?)")
		require.Equal(t, []any{"fetched_at"}, args)
	})
}

func Test_buildDeleteAllQuery(t *testing.T) {
	for _, table := range []string{tableVaults, tableItems, tableMeta} {
		query, args, err := buildDeleteAllQuery(table)
		require.NoError(t, err)

		require.Contains(t, strings.ToLower(query), "delete from "+table)
		assert.Empty(t, args)
	}
}
