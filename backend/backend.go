package backend

import "context"

//go:generate mockgen -source=backend.go -destination=../internal/mock/vault_source_mock.go -package=mock

// VaultSource defines provider-agnostic read/write access to a password
// vault. Implementations are responsible for transport, serialisation, and
// mapping provider-level failures to the sentinel values defined in this
// package.
type VaultSource interface {
	// Account returns metadata about the signed-in account. It is used for
	// the root label of listings and never contains secret material.
	Account(ctx context.Context) (Account, error)

	// Vaults returns every vault visible to the current session.
	Vaults(ctx context.Context) ([]Vault, error)

	// Items returns summaries of every item across all visible vaults.
	// Summaries carry organisational metadata only, never secrets.
	Items(ctx context.Context) ([]ItemSummary, error)

	// Get retrieves the full item with the given UUID, including secret
	// field values. Returns [ErrItemNotFound] if no such item exists.
	Get(ctx context.Context, uuid string) (*Item, error)

	// Generate creates a new login item with a provider-generated password
	// and returns the stored result, secrets included.
	Generate(ctx context.Context, req GenerateRequest) (*Item, error)
}

// TOTPSource is an optional capability for providers that compute one-time
// passwords themselves. When a VaultSource does not implement it, callers
// derive the code locally from the item's TOTP field instead.
type TOTPSource interface {
	// TOTP returns the current one-time password for the item with the
	// given UUID. Returns [ErrItemNotFound] if no such item exists and
	// [ErrNoTOTP] if the item has no one-time password configured.
	TOTP(ctx context.Context, uuid string) (string, error)
}
