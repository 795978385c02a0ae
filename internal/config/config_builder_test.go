// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jordan Doyle

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// stubUserDirs points the user config and cache lookups at throwaway
// directories so a developer's real config file cannot leak into a test.
func stubUserDirs(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "cache"))
}

// ── builder ───────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_AppliesDefaults verifies that building with no sources still
// produces a usable configuration.
func TestBuild_AppliesDefaults(t *testing.T) {
	stubUserDirs(t)

	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, BackendOp, cfg.Backend)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, strings.HasSuffix(cfg.Cache.Path, filepath.Join("1p", "metadata.db")))
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "error building config")
}

// TestBuild_FirstSourceWins verifies the merge direction: a field set by an
// earlier source is never overwritten by a later one, while gaps are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Backend: BackendOp, Timeout: 10 * time.Second},
		&Config{Backend: BackendConnect, Timeout: 20 * time.Second, LogLevel: "warn"},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, BackendOp, cfg.Backend)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{Backend: "keepass"})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrUnknownBackend)
	assert.Contains(t, err.Error(), `"keepass"`)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "op backend",
			cfg:  Config{Backend: BackendOp, Timeout: time.Second, Cache: Cache{TTL: time.Minute}},
		},
		{
			name: "connect backend with token",
			cfg:  Config{Backend: BackendConnect, Connect: Connect{Token: "bearer-xyz"}},
		},
		{
			name:    "unknown backend",
			cfg:     Config{Backend: "lastpass"},
			wantErr: ErrUnknownBackend,
		},
		{
			name:    "connect without token",
			cfg:     Config{Backend: BackendConnect},
			wantErr: ErrConnectTokenRequired,
		},
		{
			name:    "negative cache ttl",
			cfg:     Config{Backend: BackendOp, Cache: Cache{TTL: -time.Second}},
			wantErr: ErrInvalidCacheTTL,
		},
		{
			name:    "negative timeout",
			cfg:     Config{Backend: BackendOp, Timeout: -time.Second},
			wantErr: ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_Precedence verifies the full merge order: flag overlay beats
// environment, environment beats the JSON file, and defaults fill the rest.
func TestLoad_Precedence(t *testing.T) {
	// Arrange
	stubUserDirs(t)
	p := writeConfigFile(t, `{
		"op": { "binary": "/from/file" },
		"log_level": "warn",
		"cache": { "ttl": "1h" }
	}`)
	setEnvVars(t, map[string]string{
		"ONEP_CONFIG":    p,
		"ONEP_OP_BINARY": "/from/env",
		"ONEP_TIMEOUT":   "45s",
	})

	// Act
	cfg, err := Load(Config{Op: Op{Binary: "/from/flag"}})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Op.Binary)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, BackendOp, cfg.Backend)
}

func TestLoad_Defaults(t *testing.T) {
	stubUserDirs(t)
	clearEnvVars(t)

	cfg, err := Load(Config{})

	require.NoError(t, err)
	assert.Equal(t, BackendOp, cfg.Backend)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 15*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotEmpty(t, cfg.Cache.Path)
}

// TestLoad_OverlaySelectsConfigFile verifies that a --config style overlay
// value is honoured when choosing the JSON file.
func TestLoad_OverlaySelectsConfigFile(t *testing.T) {
	stubUserDirs(t)
	clearEnvVars(t)
	p := writeConfigFile(t, `{"session": {"account": "my", "token": "tok-abc123"}}`)

	cfg, err := Load(Config{ConfigFile: p})

	require.NoError(t, err)
	assert.Equal(t, "my", cfg.Session.Account)
	assert.Equal(t, "tok-abc123", cfg.Session.Token)
}

// TestLoad_DefaultConfigFile verifies that the well-known per-user path is
// consulted when no explicit file is given.
func TestLoad_DefaultConfigFile(t *testing.T) {
	stubUserDirs(t)
	clearEnvVars(t)

	def := DefaultConfigPath()
	require.NotEmpty(t, def)
	require.NoError(t, os.MkdirAll(filepath.Dir(def), 0o755))
	require.NoError(t, os.WriteFile(def, []byte(`{"log_level":"trace"}`), 0o600))

	cfg, err := Load(Config{})

	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)
}

// TestLoad_MissingDefaultIsFine verifies that an absent default config file
// is not an error, unlike an explicitly requested one.
func TestLoad_MissingDefaultIsFine(t *testing.T) {
	stubUserDirs(t)
	clearEnvVars(t)

	_, err := Load(Config{})

	assert.NoError(t, err)
}

func TestLoad_ExplicitConfigFileMissing(t *testing.T) {
	stubUserDirs(t)
	clearEnvVars(t)

	cfg, err := Load(Config{ConfigFile: filepath.Join(t.TempDir(), "nope.json")})

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestLoad_ConnectRequiresToken(t *testing.T) {
	stubUserDirs(t)
	clearEnvVars(t)

	_, err := Load(Config{Backend: BackendConnect})

	assert.ErrorIs(t, err, ErrConnectTokenRequired)
}
