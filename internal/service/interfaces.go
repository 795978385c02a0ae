package service

import (
	"context"
	"time"

	"github.com/w4/1p/backend"
	"github.com/w4/1p/internal/store"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ListOptions controls how a listing is assembled.
type ListOptions struct {
	// NoCache bypasses the metadata cache entirely: nothing is read from
	// it and nothing is written back.
	NoCache bool

	// Offline forbids backend access; the cached snapshot is served
	// regardless of age. Overview fails with ErrOfflineCacheEmpty when
	// nothing has been cached yet.
	Offline bool

	// Vault restricts the listing to a single vault, matched by name or
	// UUID (case-insensitive).
	Vault string
}

// Listing is everything a rendered overview needs: the account for the tree
// root, the vaults for the first level and the item summaries beneath them.
type Listing struct {
	Account backend.Account
	Vaults  []backend.Vault
	Items   []backend.ItemSummary

	// FromCache reports whether the listing was served from the metadata
	// cache rather than fetched live.
	FromCache bool
	// FetchedAt is when the listing data was obtained from the backend.
	FetchedAt time.Time
}

// ItemService mediates between commands, the vault backend, the metadata
// cache and TOTP generation.
type ItemService interface {
	// Overview assembles the full listing, consulting the cache according
	// to opts and the configured TTL.
	Overview(ctx context.Context, opts ListOptions) (Listing, error)

	// Search narrows the overview to items matching all terms.
	Search(ctx context.Context, opts ListOptions, terms []string) (Listing, error)

	// Get fetches full item details. Always live; details are never
	// cached.
	Get(ctx context.Context, uuid string) (*backend.Item, error)

	// Generate creates a login item with a freshly generated password and
	// returns it. Always live.
	Generate(ctx context.Context, req backend.GenerateRequest) (*backend.Item, error)

	// TOTP returns the current one-time password for the item: the
	// backend's own code when it can produce one, otherwise computed
	// locally from the item's TOTP field. Returns backend.ErrNoTOTP when
	// the item has no TOTP configured.
	TOTP(ctx context.Context, uuid string) (string, error)

	// Refresh forces a live fetch and stores the result in the cache.
	Refresh(ctx context.Context) (store.Snapshot, error)
}

// RefreshJob keeps the metadata cache warm while a long-lived view (the
// TUI) is open. The job is idle until Start is called.
type RefreshJob interface {
	// Start launches the background refresh loop. A non-positive interval
	// falls back to the default. Calling Start on a running job restarts
	// it.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited. Safe to call
	// on an idle job.
	Stop()
}
