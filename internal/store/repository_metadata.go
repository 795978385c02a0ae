// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/w4/1p/backend"
	"github.com/w4/1p/internal/logger"
)

// metadataRepository is the SQLite-backed implementation of
// [MetadataRepository]. It persists the listing metadata (account, vaults,
// item summaries) across the "vaults", "items" and "cache_meta" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type metadataRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMetadataRepository constructs a [MetadataRepository] backed by the
// provided database connection and logger.
func NewMetadataRepository(db *DB, logger *logger.Logger) MetadataRepository {
	logger.Debug().Msg("creating metadata repository")
	return &metadataRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceAll swaps the entire cache contents for snap inside a single
// transaction, so readers never observe a half-written capture. A zero
// snap.FetchedAt is stamped with the current time.
//
// Error handling:
//   - query construction failure → wrapped [ErrBuildingSQLQuery];
//   - statement failure → wrapped [ErrExecutingStatement];
//   - transaction failures → wrapped [ErrBeginningTransaction] /
//     [ErrCommitingTransaction].
func (r *metadataRepository) ReplaceAll(ctx context.Context, snap Snapshot) error {
	log := logger.FromContext(ctx)

	fetchedAt := snap.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*metadataRepository.ReplaceAll").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// items first, they reference vaults
	for _, table := range []string{tableItems, tableVaults, tableMeta} {
		query, args, err := buildDeleteAllQuery(table)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*metadataRepository.ReplaceAll").Str("table", table).Msg("error: clearing table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	for i, vault := range snap.Vaults {
		query, args, err := buildInsertVaultQuery(i, vault)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*metadataRepository.ReplaceAll").Msg("error: inserting vault")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	for i, item := range snap.Items {
		urls, err := json.Marshal(item.URLs)
		if err != nil {
			return fmt.Errorf("encode urls: %w", err)
		}
		tags, err := json.Marshal(item.Tags)
		if err != nil {
			return fmt.Errorf("encode tags: %w", err)
		}

		query, args, err := buildInsertItemQuery(i, item, string(urls), string(tags))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*metadataRepository.ReplaceAll").Msg("error: inserting item")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	meta := [][2]string{
		{metaAccountName, snap.Account.Name},
		{metaAccountDomain, snap.Account.Domain},
		{metaFetchedAt, fetchedAt.Format(time.RFC3339Nano)},
	}
	for _, kv := range meta {
		query, args, err := buildUpsertMetaQuery(kv[0], kv[1])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*metadataRepository.ReplaceAll").Msg("error: storing metadata")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*metadataRepository.ReplaceAll").Msg("error: cannot commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "*metadataRepository.ReplaceAll").
		Int("vaults", len(snap.Vaults)).
		Int("items", len(snap.Items)).
		Msg("cache replaced")
	return nil
}

// Snapshot reads the full cached capture back out, restoring vault and
// item order exactly as the backend returned it.
//
// Error handling:
//   - no fetched_at recorded → [ErrCacheEmpty];
//   - read failures → wrapped [ErrExecutingQuery] / [ErrScanningRows].
func (r *metadataRepository) Snapshot(ctx context.Context) (Snapshot, error) {
	meta, err := r.readMeta(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	raw, ok := meta[metaFetchedAt]
	if !ok {
		return Snapshot{}, ErrCacheEmpty
	}
	fetchedAt, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse cached fetch time: %w", err)
	}

	snap := Snapshot{
		Account: backend.Account{
			Name:   meta[metaAccountName],
			Domain: meta[metaAccountDomain],
		},
		FetchedAt: fetchedAt,
	}

	if snap.Vaults, err = r.readVaults(ctx); err != nil {
		return Snapshot{}, err
	}
	if snap.Items, err = r.readItems(ctx); err != nil {
		return Snapshot{}, err
	}

	return snap, nil
}

// Age reports how long ago ReplaceAll last ran, without loading the
// listings themselves.
func (r *metadataRepository) Age(ctx context.Context) (time.Duration, error) {
	meta, err := r.readMeta(ctx, metaFetchedAt)
	if err != nil {
		return 0, err
	}

	raw, ok := meta[metaFetchedAt]
	if !ok {
		return 0, ErrCacheEmpty
	}
	fetchedAt, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return 0, fmt.Errorf("parse cached fetch time: %w", err)
	}

	return time.Since(fetchedAt), nil
}

// Clear drops every cached row in one transaction.
func (r *metadataRepository) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*metadataRepository.Clear").Msg("error: cannot begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range []string{tableItems, tableVaults, tableMeta} {
		query, args, err := buildDeleteAllQuery(table)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*metadataRepository.Clear").Str("table", table).Msg("error: clearing table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*metadataRepository.Clear").Msg("error: cannot commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *metadataRepository) readMeta(ctx context.Context, keys ...string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMetaQuery(keys...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*metadataRepository.readMeta").Msg("error: querying metadata")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	meta := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		meta[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return meta, nil
}

func (r *metadataRepository) readVaults(ctx context.Context) ([]backend.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVaultsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*metadataRepository.readVaults").Msg("error: querying vaults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var vaults []backend.Vault
	for rows.Next() {
		var vault backend.Vault
		if err = rows.Scan(&vault.UUID, &vault.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		vaults = append(vaults, vault)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vaults, nil
}

func (r *metadataRepository) readItems(ctx context.Context) ([]backend.ItemSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*metadataRepository.readItems").Msg("error: querying items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []backend.ItemSummary
	for rows.Next() {
		var (
			item backend.ItemSummary
			urls string
			tags string
		)
		if err = rows.Scan(&item.UUID, &item.VaultUUID, &item.Title, &item.AccountInfo, &urls, &tags); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err = json.Unmarshal([]byte(urls), &item.URLs); err != nil {
			return nil, fmt.Errorf("decode cached urls: %w", err)
		}
		if err = json.Unmarshal([]byte(tags), &item.Tags); err != nil {
			return nil, fmt.Errorf("decode cached tags: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
