// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

// Package op implements [backend.VaultSource] on top of the `op` command
// line tool distributed by AgileBits.
//
// Every operation shells out to the binary and decodes its JSON output.
// Sessions are injected explicitly: the account shorthand and token from
// [Config] become a single OP_SESSION_<account> entry in the child process
// environment, so nothing here ever consults ambient session state.
package op

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/w4/1p/backend"
)

// Config carries the settings needed to drive the op binary.
type Config struct {
	// Binary is the executable to invoke, resolved from PATH when it is
	// not an absolute path. Defaults to "op".
	Binary string

	// SessionAccount is the account shorthand the session token belongs
	// to, e.g. "my" for my.1password.com.
	SessionAccount string

	// SessionToken is the raw session token printed by `op signin`.
	// Both SessionAccount and SessionToken must be set for the session
	// to be forwarded.
	SessionToken string
}

// Backend drives the op tool. Construct with [New].
type Backend struct {
	cfg    Config
	runner Runner
}

// New returns a Backend executing the configured op binary directly.
func New(cfg Config) *Backend {
	if cfg.Binary == "" {
		cfg.Binary = "op"
	}
	return &Backend{cfg: cfg, runner: execRunner{binary: cfg.Binary}}
}

// Account implements [backend.VaultSource] via `op get account`.
func (b *Backend) Account(ctx context.Context) (backend.Account, error) {
	out, err := b.run(ctx, "get", "account")
	if err != nil {
		return backend.Account{}, err
	}

	var acc getAccount
	if err := json.Unmarshal(out, &acc); err != nil {
		return backend.Account{}, fmt.Errorf("decode op account: %w", err)
	}
	return backend.Account(acc), nil
}

// Vaults implements [backend.VaultSource] via `op list vaults`.
func (b *Backend) Vaults(ctx context.Context) ([]backend.Vault, error) {
	out, err := b.run(ctx, "list", "vaults")
	if err != nil {
		return nil, err
	}

	var listed []listVault
	if err := json.Unmarshal(out, &listed); err != nil {
		return nil, fmt.Errorf("decode op vaults: %w", err)
	}

	vaults := make([]backend.Vault, len(listed))
	for i, v := range listed {
		vaults[i] = backend.Vault(v)
	}
	return vaults, nil
}

// Items implements [backend.VaultSource] via `op list items`.
func (b *Backend) Items(ctx context.Context) ([]backend.ItemSummary, error) {
	out, err := b.run(ctx, "list", "items")
	if err != nil {
		return nil, err
	}

	var listed []listItem
	if err := json.Unmarshal(out, &listed); err != nil {
		return nil, fmt.Errorf("decode op items: %w", err)
	}

	items := make([]backend.ItemSummary, len(listed))
	for i, v := range listed {
		items[i] = v.summary()
	}
	return items, nil
}

// Get implements [backend.VaultSource] via `op get item`.
func (b *Backend) Get(ctx context.Context, uuid string) (*backend.Item, error) {
	out, err := b.run(ctx, "get", "item", uuid)
	if err != nil {
		return nil, err
	}

	var item getItem
	if err := json.Unmarshal(out, &item); err != nil {
		return nil, fmt.Errorf("decode op item: %w", err)
	}
	return item.item(), nil
}

// TOTP implements [backend.TOTPSource] via `op get totp`, which computes
// the current code server-side.
func (b *Backend) TOTP(ctx context.Context, uuid string) (string, error) {
	out, err := b.run(ctx, "get", "totp", uuid)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Generate implements [backend.VaultSource] via `op create item Login
// --generate-password`, then fetches the stored result so the caller sees
// the password op chose.
func (b *Backend) Generate(ctx context.Context, req backend.GenerateRequest) (*backend.Item, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("generate: name is required")
	}

	args := []string{"create", "item", "Login", "--generate-password", "--title", req.Name}
	if req.URL != "" {
		args = append(args, "--url", req.URL)
	}
	if len(req.Tags) > 0 {
		args = append(args, "--tags", strings.Join(req.Tags, ","))
	}
	if req.Vault != "" {
		args = append(args, "--vault", req.Vault)
	}
	if req.Username != "" {
		args = append(args, "username="+req.Username)
	}

	out, err := b.run(ctx, args...)
	if err != nil {
		return nil, err
	}

	var created createItem
	if err := json.Unmarshal(out, &created); err != nil {
		return nil, fmt.Errorf("decode op create response: %w", err)
	}
	return b.Get(ctx, created.UUID)
}

func (b *Backend) run(ctx context.Context, args ...string) ([]byte, error) {
	var extraEnv []string
	if b.cfg.SessionAccount != "" && b.cfg.SessionToken != "" {
		extraEnv = append(extraEnv, fmt.Sprintf("OP_SESSION_%s=%s", b.cfg.SessionAccount, b.cfg.SessionToken))
	}

	out, err := b.runner.Run(ctx, extraEnv, args...)
	if err != nil {
		return nil, mapRunError(err)
	}
	return out, nil
}
