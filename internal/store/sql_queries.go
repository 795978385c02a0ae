package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/w4/1p/backend"
)

const (
	tableVaults = "vaults"
	tableItems  = "items"
	tableMeta   = "cache_meta"
)

// Keys stored in the cache_meta table.
const (
	metaAccountName   = "account_name"
	metaAccountDomain = "account_domain"
	metaFetchedAt     = "fetched_at"
)

// The position column preserves backend ordering across a round trip
// through the cache; listings render items in the order the backend
// returned them.

func buildInsertVaultQuery(position int, vault backend.Vault) (string, []any, error) {
	return sq.Insert(tableVaults).
		Columns("uuid", "name", "position").
		Values(vault.UUID, vault.Name, position).
		ToSql()
}

func buildInsertItemQuery(position int, item backend.ItemSummary, urls, tags string) (string, []any, error) {
	return sq.Insert(tableItems).
		Columns("uuid", "vault_uuid", "title", "account_info", "urls", "tags", "position").
		Values(item.UUID, item.VaultUUID, item.Title, item.AccountInfo, urls, tags, position).
		ToSql()
}

func buildUpsertMetaQuery(key, value string) (string, []any, error) {
	return sq.Insert(tableMeta).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
}

func buildSelectVaultsQuery() (string, []any, error) {
	return sq.Select("uuid", "name").
		From(tableVaults).
		OrderBy("position").
		ToSql()
}

func buildSelectItemsQuery() (string, []any, error) {
	return sq.Select("uuid", "vault_uuid", "title", "account_info", "urls", "tags").
		From(tableItems).
		OrderBy("position").
		ToSql()
}

// buildSelectMetaQuery selects the named keys, or every row when no keys
// are given.
func buildSelectMetaQuery(keys ...string) (string, []any, error) {
	builder := sq.Select("key", "value").From(tableMeta)
	if len(keys) > 0 {
		builder = builder.Where(sq.Eq{"key": keys})
	}
	return builder.ToSql()
}

func buildDeleteAllQuery(table string) (string, []any, error) {
	return sq.Delete(table).ToSql()
}
