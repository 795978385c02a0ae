// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

// Package connect implements [backend.VaultSource] against a self-hosted
// 1Password Connect server.
//
// Connect speaks plain REST with a bearer token, so unlike the op backend
// there is no external binary and no interactive signin; the token is issued
// once when the Connect deployment is provisioned. Connect has no account
// endpoint either, so [Backend.Account] synthesises one from /health and the
// configured host.
package connect

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/w4/1p/backend"
)

// Config carries the settings to reach a Connect server.
type Config struct {
	// Host is the base URL of the server. Defaults to "http://localhost:8080".
	Host string

	// Token is the bearer token issued for this Connect deployment.
	Token string

	// Timeout bounds every request. Defaults to 15 seconds.
	Timeout time.Duration
}

// Backend drives a 1Password Connect server. Construct with [New].
type Backend struct {
	client      *resty.Client
	host        string
	tokenExpiry time.Time
}

// New returns a Backend talking to the configured Connect server. The token
// is inspected (without signature verification) so callers can surface an
// expiry warning before the server starts rejecting requests.
func New(cfg Config) *Backend {
	if cfg.Host == "" {
		cfg.Host = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Host, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.Token)

	// tag every request for server-side log correlation
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Request-Id", requestID())
		return nil
	})

	b := &Backend{client: client, host: cfg.Host}

	if token, _, err := jwt.NewParser().ParseUnverified(cfg.Token, jwt.MapClaims{}); err == nil {
		if expiry, err := token.Claims.GetExpirationTime(); err == nil && expiry != nil {
			b.tokenExpiry = expiry.Time
		}
	}
	return b
}

// TokenExpiresAt reports when the configured bearer token lapses. The
// second return is false when the token carries no expiry claim or could
// not be parsed as a JWT.
func (b *Backend) TokenExpiresAt() (time.Time, bool) {
	return b.tokenExpiry, !b.tokenExpiry.IsZero()
}

// Account implements [backend.VaultSource]. Connect serves vaults rather
// than accounts, so the health endpoint's server name stands in for the
// account name and the configured host for the sign-in domain.
func (b *Backend) Account(ctx context.Context) (backend.Account, error) {
	var health healthResource
	if err := b.get(ctx, "/health", &health); err != nil {
		return backend.Account{}, err
	}

	name := health.Name
	if name == "" {
		name = "1Password Connect"
	}
	return backend.Account{Name: name, Domain: hostLabel(b.host)}, nil
}

// Vaults implements [backend.VaultSource].
func (b *Backend) Vaults(ctx context.Context) ([]backend.Vault, error) {
	var listed []vaultResource
	if err := b.get(ctx, "/v1/vaults", &listed); err != nil {
		return nil, err
	}

	vaults := make([]backend.Vault, len(listed))
	for i, v := range listed {
		vaults[i] = backend.Vault{UUID: v.ID, Name: v.Name}
	}
	return vaults, nil
}

// Items implements [backend.VaultSource]. Connect scopes item listings to a
// vault, so the listing fans out across every visible vault.
func (b *Backend) Items(ctx context.Context) ([]backend.ItemSummary, error) {
	vaults, err := b.Vaults(ctx)
	if err != nil {
		return nil, err
	}

	var items []backend.ItemSummary
	for _, vault := range vaults {
		var listed []itemResource
		if err := b.get(ctx, fmt.Sprintf("/v1/vaults/%s/items", vault.UUID), &listed); err != nil {
			return nil, err
		}
		for _, r := range listed {
			items = append(items, r.summary())
		}
	}
	return items, nil
}

// Get implements [backend.VaultSource]. Item URLs are vault-scoped and the
// caller only has a UUID, so each vault is probed in turn.
func (b *Backend) Get(ctx context.Context, itemUUID string) (*backend.Item, error) {
	r, err := b.rawItem(ctx, itemUUID)
	if err != nil {
		return nil, err
	}
	return r.item(), nil
}

// TOTP implements [backend.TOTPSource] using the code Connect computes
// alongside OTP fields. Items whose OTP field carries only the seed report
// [backend.ErrNoTOTP] so the caller can derive the code itself.
func (b *Backend) TOTP(ctx context.Context, itemUUID string) (string, error) {
	r, err := b.rawItem(ctx, itemUUID)
	if err != nil {
		return "", err
	}

	for _, f := range r.Fields {
		if strings.EqualFold(f.Type, fieldTypeOTP) && f.TOTP != "" {
			return f.TOTP, nil
		}
	}
	return "", backend.ErrNoTOTP
}

// Generate implements [backend.VaultSource] by POSTing a LOGIN item whose
// password field asks the server to generate a value. Connect echoes the
// stored item back, generated password included.
func (b *Backend) Generate(ctx context.Context, req backend.GenerateRequest) (*backend.Item, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("generate: name is required")
	}

	vaultUUID, err := b.resolveVault(ctx, req.Vault)
	if err != nil {
		return nil, err
	}

	body := itemResource{
		Vault:    &vaultRef{ID: vaultUUID},
		Title:    req.Name,
		Category: "LOGIN",
		Tags:     req.Tags,
		Fields: []fieldResource{
			{
				Purpose:  fieldPurposePassword,
				Generate: true,
				Recipe:   &generateRecipe{Length: 32, CharacterSets: []string{"LETTERS", "DIGITS", "SYMBOLS"}},
			},
		},
	}
	if req.Username != "" {
		body.Fields = append([]fieldResource{{Purpose: fieldPurposeUsername, Value: req.Username}}, body.Fields...)
	}
	if req.URL != "" {
		body.URLs = []urlResource{{Primary: true, HRef: req.URL}}
	}

	resp, err := b.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&itemResource{}).
		Post(fmt.Sprintf("/v1/vaults/%s/items", vaultUUID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", backend.ErrBackendUnavailable, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	created, ok := resp.Result().(*itemResource)
	if !ok {
		return nil, fmt.Errorf("decode connect create response: unexpected payload")
	}
	return created.item(), nil
}

// rawItem fetches the wire representation of an item by probing each vault.
func (b *Backend) rawItem(ctx context.Context, itemUUID string) (*itemResource, error) {
	vaults, err := b.Vaults(ctx)
	if err != nil {
		return nil, err
	}

	for _, vault := range vaults {
		var r itemResource
		err := b.get(ctx, fmt.Sprintf("/v1/vaults/%s/items/%s", vault.UUID, itemUUID), &r)
		if errors.Is(err, backend.ErrItemNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &r, nil
	}
	return nil, fmt.Errorf("%w: no vault holds item %q", backend.ErrItemNotFound, itemUUID)
}

// resolveVault turns a vault selector (name or UUID, case-insensitive) into
// a vault UUID. An empty selector is allowed only when exactly one vault is
// visible.
func (b *Backend) resolveVault(ctx context.Context, selector string) (string, error) {
	vaults, err := b.Vaults(ctx)
	if err != nil {
		return "", err
	}

	if selector == "" {
		if len(vaults) == 1 {
			return vaults[0].UUID, nil
		}
		return "", fmt.Errorf("generate: account has %d vaults, choose one with --vault", len(vaults))
	}

	for _, v := range vaults {
		if strings.EqualFold(v.UUID, selector) || strings.EqualFold(v.Name, selector) {
			return v.UUID, nil
		}
	}
	return "", fmt.Errorf("generate: vault %q not found", selector)
}

func (b *Backend) get(ctx context.Context, path string, result any) error {
	resp, err := b.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("%w: %v", backend.ErrBackendUnavailable, err)
	}
	return mapHTTPError(resp)
}

// hostLabel reduces the configured base URL to something fit for the
// "account domain" slot in listings.
func hostLabel(host string) string {
	if u, err := url.Parse(host); err == nil && u.Host != "" {
		return u.Host
	}
	return strings.TrimRight(strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://"), "/")
}

func requestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
