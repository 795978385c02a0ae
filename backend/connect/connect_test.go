// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

package connect

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/w4/1p/backend"
)

const testToken = "test-token"

type fixtureServer struct {
	*httptest.Server

	mu         sync.Mutex
	requestIDs []string
	created    []itemResource
}

// newFixtureServer stands up a minimal Connect lookalike: two vaults, one
// item, bearer-token auth, JSON error envelopes.
func newFixtureServer(t *testing.T) *fixtureServer {
	t.Helper()

	fx := &fixtureServer{}

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fx.mu.Lock()
			fx.requestIDs = append(fx.requestIDs, r.Header.Get("X-Request-Id"))
			fx.mu.Unlock()

			if r.URL.Path != "/health" && r.Header.Get("Authorization") != "Bearer "+testToken {
				writeJSON(w, http.StatusUnauthorized, connectError{Status: 401, Message: "Invalid bearer token"})
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthResource{Name: "1Password Connect API", Version: "1.7.3"})
	})

	router.Get("/v1/vaults", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []vaultResource{
			{ID: "vault-guest", Name: "Guest House Network"},
			{ID: "vault-personal", Name: "Personal"},
		})
	})

	router.Get("/v1/vaults/{vaultID}/items", func(w http.ResponseWriter, r *http.Request) {
		switch chi.URLParam(r, "vaultID") {
		case "vault-personal":
			writeJSON(w, http.StatusOK, []itemResource{{
				ID:             "item-sc",
				Title:          "SoundCloud",
				Vault:          &vaultRef{ID: "vault-personal"},
				Category:       "LOGIN",
				URLs:           []urlResource{{Label: "website", Primary: true, HRef: "https://soundcloud.com"}},
				Tags:           []string{"Personal/Media"},
				AdditionalInfo: "jordan@doyle.la",
			}})
		case "vault-guest":
			writeJSON(w, http.StatusOK, []itemResource{{
				ID:    "item-switch",
				Title: "switch0-3-6",
				Vault: &vaultRef{ID: "vault-guest"},
			}})
		default:
			writeJSON(w, http.StatusNotFound, connectError{Status: 404, Message: "vault not found"})
		}
	})

	router.Get("/v1/vaults/{vaultID}/items/{itemID}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "vaultID") != "vault-personal" || chi.URLParam(r, "itemID") != "item-sc" {
			writeJSON(w, http.StatusNotFound, connectError{Status: 404, Message: "item not found"})
			return
		}
		writeJSON(w, http.StatusOK, itemResource{
			ID:       "item-sc",
			Title:    "SoundCloud",
			Vault:    &vaultRef{ID: "vault-personal"},
			Category: "LOGIN",
			Fields: []fieldResource{
				{ID: "f1", Type: "STRING", Purpose: "USERNAME", Label: "username", Value: "jordan@doyle.la"},
				{ID: "f2", Type: "CONCEALED", Purpose: "PASSWORD", Label: "password", Value: "hunter2"},
				{ID: "f3", Type: "OTP", Label: "one-time password", Value: "otpauth://totp/x?secret=GEZDGNBV", TOTP: "954284", Section: &sectionRef{ID: "sec1"}},
				{ID: "f4", Type: "STRING", Label: "blank", Value: ""},
			},
			Sections: []sectionResource{{ID: "sec1", Label: "Security"}},
		})
	})

	router.Post("/v1/vaults/{vaultID}/items", func(w http.ResponseWriter, r *http.Request) {
		var body itemResource
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, connectError{Status: 400, Message: err.Error()})
			return
		}
		fx.mu.Lock()
		fx.created = append(fx.created, body)
		fx.mu.Unlock()

		stored := body
		stored.ID = "item-created"
		for i := range stored.Fields {
			if stored.Fields[i].Generate {
				stored.Fields[i].Value = "srv-generated-pw"
				stored.Fields[i].Generate = false
				stored.Fields[i].Recipe = nil
			}
		}
		writeJSON(w, http.StatusOK, stored)
	})

	fx.Server = httptest.NewServer(router)
	t.Cleanup(fx.Close)
	return fx
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestBackend(t *testing.T) (*Backend, *fixtureServer) {
	t.Helper()
	fx := newFixtureServer(t)
	return New(Config{Host: fx.URL, Token: testToken}), fx
}

func TestAccount(t *testing.T) {
	b, fx := newTestBackend(t)

	acc, err := b.Account(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1Password Connect API", acc.Name)
	assert.NotEmpty(t, acc.Domain)

	// every request carries a correlation id
	fx.mu.Lock()
	defer fx.mu.Unlock()
	require.NotEmpty(t, fx.requestIDs)
	assert.NotEmpty(t, fx.requestIDs[0])
}

func TestVaults(t *testing.T) {
	b, _ := newTestBackend(t)

	vaults, err := b.Vaults(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []backend.Vault{
		{UUID: "vault-guest", Name: "Guest House Network"},
		{UUID: "vault-personal", Name: "Personal"},
	}, vaults)
}

func TestItems_AggregatesAcrossVaults(t *testing.T) {
	b, _ := newTestBackend(t)

	items, err := b.Items(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []backend.ItemSummary{
		{
			UUID:      "item-switch",
			VaultUUID: "vault-guest",
			Title:     "switch0-3-6",
		},
		{
			UUID:        "item-sc",
			VaultUUID:   "vault-personal",
			Title:       "SoundCloud",
			AccountInfo: "jordan@doyle.la",
			URLs:        []string{"https://soundcloud.com"},
			Tags:        []string{"Personal/Media"},
		},
	}, items)
}

func TestGet_ProbesVaultsForTheItem(t *testing.T) {
	b, _ := newTestBackend(t)

	// the item lives in the second vault, the 404 from the first must
	// not end the search
	item, err := b.Get(context.Background(), "item-sc")
	require.NoError(t, err)

	assert.Equal(t, "item-sc", item.UUID)
	assert.Equal(t, "SoundCloud", item.Title)
	assert.Equal(t, []backend.Field{
		{Name: "username", Value: "jordan@doyle.la", Kind: backend.FieldKindUsername},
		{Name: "password", Value: "hunter2", Kind: backend.FieldKindPassword},
	}, item.Fields)
	require.Len(t, item.Sections, 1)
	assert.Equal(t, "Security", item.Sections[0].Name)
	assert.Equal(t, []backend.Field{
		{Name: "one-time password", Value: "otpauth://totp/x?secret=GEZDGNBV", Kind: backend.FieldKindTOTP},
	}, item.Sections[0].Fields)
}

func TestGet_NotFound(t *testing.T) {
	b, _ := newTestBackend(t)

	_, err := b.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, backend.ErrItemNotFound)
}

func TestTOTP(t *testing.T) {
	b, _ := newTestBackend(t)

	code, err := b.TOTP(context.Background(), "item-sc")
	require.NoError(t, err)
	assert.Equal(t, "954284", code)
}

func TestGenerate(t *testing.T) {
	b, fx := newTestBackend(t)

	item, err := b.Generate(context.Background(), backend.GenerateRequest{
		Name:     "my-new-login",
		Username: "jordan",
		URL:      "https://example.com",
		Tags:     []string{"Work"},
		Vault:    "Personal",
	})
	require.NoError(t, err)

	fx.mu.Lock()
	require.Len(t, fx.created, 1)
	sent := fx.created[0]
	fx.mu.Unlock()

	assert.Equal(t, "LOGIN", sent.Category)
	assert.Equal(t, "my-new-login", sent.Title)
	require.NotNil(t, sent.Vault)
	assert.Equal(t, "vault-personal", sent.Vault.ID)
	assert.Equal(t, []string{"Work"}, sent.Tags)
	assert.Equal(t, []urlResource{{Primary: true, HRef: "https://example.com"}}, sent.URLs)

	require.Len(t, sent.Fields, 2)
	assert.Equal(t, "USERNAME", sent.Fields[0].Purpose)
	assert.Equal(t, "jordan", sent.Fields[0].Value)
	assert.Equal(t, "PASSWORD", sent.Fields[1].Purpose)
	assert.True(t, sent.Fields[1].Generate)
	require.NotNil(t, sent.Fields[1].Recipe)
	assert.Equal(t, 32, sent.Fields[1].Recipe.Length)

	pw, ok := item.FieldByKind(backend.FieldKindPassword)
	require.True(t, ok)
	assert.Equal(t, "srv-generated-pw", pw.Value)
}

func TestGenerate_VaultSelectorRequired(t *testing.T) {
	b, _ := newTestBackend(t)

	_, err := b.Generate(context.Background(), backend.GenerateRequest{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--vault")
}

func TestGenerate_UnknownVault(t *testing.T) {
	b, _ := newTestBackend(t)

	_, err := b.Generate(context.Background(), backend.GenerateRequest{Name: "x", Vault: "Shared"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `vault "Shared" not found`)
}

func TestUnauthorized(t *testing.T) {
	fx := newFixtureServer(t)
	b := New(Config{Host: fx.URL, Token: "wrong"})

	_, err := b.Vaults(context.Background())
	assert.ErrorIs(t, err, backend.ErrNotSignedIn)
}

func TestServerUnreachable(t *testing.T) {
	b := New(Config{Host: "http://127.0.0.1:1", Token: testToken, Timeout: time.Second})

	_, err := b.Vaults(context.Background())
	assert.ErrorIs(t, err, backend.ErrBackendUnavailable)
}

func TestTokenExpiresAt(t *testing.T) {
	expiry := time.Now().Add(-time.Hour).Truncate(time.Second)
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiry),
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	b := New(Config{Token: expired})
	got, ok := b.TokenExpiresAt()
	require.True(t, ok)
	assert.True(t, got.Equal(expiry))
}

func TestTokenExpiresAt_NoClaim(t *testing.T) {
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer: "test",
	}).SignedString([]byte("irrelevant"))
	require.NoError(t, err)

	b := New(Config{Token: noExpiry})
	_, ok := b.TokenExpiresAt()
	assert.False(t, ok)
}

func TestTokenExpiresAt_NotAJWT(t *testing.T) {
	b := New(Config{Token: "just-an-opaque-token"})
	_, ok := b.TokenExpiresAt()
	assert.False(t, ok)
}
