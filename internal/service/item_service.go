// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/w4/1p/backend"
	"github.com/w4/1p/internal/logger"
	"github.com/w4/1p/internal/store"
	"github.com/w4/1p/internal/totp"
)

// itemService is the default [ItemService] implementation. Listings are
// read through the metadata cache when it is fresh enough; item details,
// generation and TOTP codes always go to the backend.
type itemService struct {
	backend backend.VaultSource
	cache   store.MetadataRepository // nil when the cache is disabled
	ttl     time.Duration
	logger  *logger.Logger
}

// NewItemService constructs an [ItemService] over the given vault source.
// cache may be nil to disable metadata caching; ttl bounds how long a
// cached listing is considered fresh.
func NewItemService(source backend.VaultSource, cache store.MetadataRepository, ttl time.Duration, log *logger.Logger) ItemService {
	log.Debug().Dur("ttl", ttl).Bool("cache", cache != nil).Msg("creating item service")
	return &itemService{
		backend: source,
		cache:   cache,
		ttl:     ttl,
		logger:  log,
	}
}

func (s *itemService) Overview(ctx context.Context, opts ListOptions) (Listing, error) {
	log := logger.FromContext(ctx)

	if opts.Offline {
		if s.cache == nil {
			return Listing{}, ErrCacheDisabled
		}
		snap, err := s.cache.Snapshot(ctx)
		if errors.Is(err, store.ErrCacheEmpty) {
			return Listing{}, ErrOfflineCacheEmpty
		}
		if err != nil {
			return Listing{}, err
		}
		return listingFromSnapshot(snap, opts, true)
	}

	if !opts.NoCache && s.cache != nil {
		snap, err := s.cache.Snapshot(ctx)
		switch {
		case err == nil && time.Since(snap.FetchedAt) < s.ttl:
			log.Debug().Time("fetched_at", snap.FetchedAt).Msg("serving listing from cache")
			return listingFromSnapshot(snap, opts, true)
		case err != nil && !errors.Is(err, store.ErrCacheEmpty):
			log.Warn().Err(err).Msg("cache read failed, falling back to backend")
		}
	}

	snap, err := s.fetchLive(ctx)
	if err != nil {
		return Listing{}, err
	}

	if !opts.NoCache && s.cache != nil {
		// a failed refresh must not break the listing itself
		if err := s.cache.ReplaceAll(ctx, snap); err != nil {
			log.Warn().Err(err).Msg("failed to refresh metadata cache")
		}
	}

	return listingFromSnapshot(snap, opts, false)
}

func (s *itemService) Search(ctx context.Context, opts ListOptions, terms []string) (Listing, error) {
	listing, err := s.Overview(ctx, opts)
	if err != nil {
		return Listing{}, err
	}

	listing.Items = backend.Filter(listing.Items, strings.Join(terms, " "))
	return listing, nil
}

func (s *itemService) Get(ctx context.Context, uuid string) (*backend.Item, error) {
	return s.backend.Get(ctx, uuid)
}

func (s *itemService) Generate(ctx context.Context, req backend.GenerateRequest) (*backend.Item, error) {
	return s.backend.Generate(ctx, req)
}

// TOTP prefers the backend's own code (op computes codes itself, Connect
// may precompute them) and falls back to generating one locally from the
// item's TOTP seed.
func (s *itemService) TOTP(ctx context.Context, uuid string) (string, error) {
	log := logger.FromContext(ctx)

	if totpSource, ok := s.backend.(backend.TOTPSource); ok {
		code, err := totpSource.TOTP(ctx, uuid)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, backend.ErrNoTOTP) {
			return "", err
		}
		log.Debug().Str("item", uuid).Msg("backend has no code, computing locally")
	}

	item, err := s.backend.Get(ctx, uuid)
	if err != nil {
		return "", err
	}

	field, ok := item.FieldByKind(backend.FieldKindTOTP)
	if !ok {
		return "", backend.ErrNoTOTP
	}

	generator, err := totp.Parse(field.Value)
	if err != nil {
		return "", fmt.Errorf("parse totp seed: %w", err)
	}
	return generator.Now()
}

func (s *itemService) Refresh(ctx context.Context) (store.Snapshot, error) {
	if s.cache == nil {
		return store.Snapshot{}, ErrCacheDisabled
	}

	snap, err := s.fetchLive(ctx)
	if err != nil {
		return store.Snapshot{}, err
	}

	if err = s.cache.ReplaceAll(ctx, snap); err != nil {
		return store.Snapshot{}, err
	}

	return snap, nil
}

func (s *itemService) fetchLive(ctx context.Context) (store.Snapshot, error) {
	log := logger.FromContext(ctx)

	account, err := s.backend.Account(ctx)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("fetch account: %w", err)
	}
	vaults, err := s.backend.Vaults(ctx)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("list vaults: %w", err)
	}
	items, err := s.backend.Items(ctx)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("list items: %w", err)
	}

	log.Debug().Int("vaults", len(vaults)).Int("items", len(items)).Msg("fetched listing from backend")

	return store.Snapshot{
		Account:   account,
		Vaults:    vaults,
		Items:     items,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// listingFromSnapshot converts a snapshot to a listing, applying the vault
// selector when one is set.
func listingFromSnapshot(snap store.Snapshot, opts ListOptions, fromCache bool) (Listing, error) {
	listing := Listing{
		Account:   snap.Account,
		Vaults:    snap.Vaults,
		Items:     snap.Items,
		FromCache: fromCache,
		FetchedAt: snap.FetchedAt,
	}

	if opts.Vault == "" {
		return listing, nil
	}

	var selected *backend.Vault
	for i := range snap.Vaults {
		if strings.EqualFold(snap.Vaults[i].Name, opts.Vault) || strings.EqualFold(snap.Vaults[i].UUID, opts.Vault) {
			selected = &snap.Vaults[i]
			break
		}
	}
	if selected == nil {
		return Listing{}, fmt.Errorf("%w: %q", ErrUnknownVault, opts.Vault)
	}

	items := make([]backend.ItemSummary, 0, len(snap.Items))
	for _, item := range snap.Items {
		if item.VaultUUID == selected.UUID {
			items = append(items, item)
		}
	}

	listing.Vaults = []backend.Vault{*selected}
	listing.Items = items
	return listing, nil
}
