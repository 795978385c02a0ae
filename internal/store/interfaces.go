package store

import (
	"context"
	"time"

	"github.com/w4/1p/backend"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Snapshot is one complete capture of the non-secret listing metadata: the
// account, its vaults and the item summaries, plus the time it was fetched
// from the backend. Secrets and item details are never part of a snapshot.
type Snapshot struct {
	Account   backend.Account
	Vaults    []backend.Vault
	Items     []backend.ItemSummary
	FetchedAt time.Time
}

// MetadataRepository is the persistence seam for cached listing metadata.
type MetadataRepository interface {
	// ReplaceAll atomically swaps the cache contents for snap.
	ReplaceAll(ctx context.Context, snap Snapshot) error
	// Snapshot returns the cached capture, or ErrCacheEmpty when nothing
	// has been stored yet.
	Snapshot(ctx context.Context) (Snapshot, error)
	// Age reports how long ago the cache was last replaced, or
	// ErrCacheEmpty.
	Age(ctx context.Context) (time.Duration, error)
	// Clear drops all cached metadata.
	Clear(ctx context.Context) error
}
