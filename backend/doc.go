// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

// Package backend defines the provider-neutral contract between 1p commands
// and a password vault.
//
// The primary abstraction is [VaultSource], which decouples command logic from
// the underlying provider. The module ships two implementations: backend/op
// (wrapping the AgileBits `op` CLI as a subprocess) and backend/connect
// (talking to a 1Password Connect server over REST). Commands, the renderer,
// and the cache never know which one they are driving.
//
// Providers that can produce one-time passwords server-side additionally
// implement [TOTPSource]; callers discover the capability with a type
// assertion and fall back to local generation when it is absent.
//
// Error values defined in errors.go are shared by all implementations so that
// callers can use [errors.Is] for provider-agnostic error handling (e.g.
// [ErrNotSignedIn] regardless of whether it came from an `op` exit status or
// an HTTP 401).
package backend
