package config

import (
	"os"
	"path/filepath"
	"time"
)

// Backend kinds accepted by [Config.Backend].
const (
	BackendOp      = "op"
	BackendConnect = "connect"
)

// EnvPrefix is prepended to every environment variable this package reads,
// e.g. ONEP_BACKEND, ONEP_SESSION_TOKEN, ONEP_CACHE_TTL.
const EnvPrefix = "ONEP_"

// Op holds settings for the op subprocess backend.
type Op struct {
	// Binary overrides the op executable to invoke.
	Binary string `env:"BINARY" json:"binary"`
}

// Session carries an explicit op session. When both fields are set the op
// backend forwards them to the subprocess as OP_SESSION_<account>; nothing
// else in the program reads ambient session state.
type Session struct {
	// Account is the account shorthand, e.g. "my" for my.1password.com.
	Account string `env:"ACCOUNT" json:"account"`
	// Token is the session token printed by `op signin --raw`.
	Token string `env:"TOKEN" json:"token"`
}

// Connect holds 1Password Connect server settings, required when the
// connect backend is selected.
type Connect struct {
	// Host is the base URL of the Connect server.
	Host string `env:"HOST" json:"host"`
	// Token is the bearer token issued for the deployment.
	Token string `env:"TOKEN" json:"token"`
}

// Cache holds local metadata cache settings. The cache stores vault and
// item listings only; secrets are never written to it.
type Cache struct {
	// Path is the SQLite file backing the cache.
	Path string `env:"PATH" json:"path"`
	// TTL is how long a cached listing stays fresh before the next
	// command refreshes it from the backend.
	TTL time.Duration `env:"TTL" json:"-"`
	// Disabled turns the cache off entirely.
	Disabled bool `env:"DISABLED" json:"disabled"`
}

// Config is the fully merged runtime configuration.
type Config struct {
	// Backend selects the vault provider: [BackendOp] or [BackendConnect].
	Backend string `env:"BACKEND" json:"backend"`

	Op      Op      `envPrefix:"OP_" json:"op"`
	Session Session `envPrefix:"SESSION_" json:"session"`
	Connect Connect `envPrefix:"CONNECT_" json:"connect"`
	Cache   Cache   `envPrefix:"CACHE_" json:"cache"`

	// Timeout bounds every backend operation.
	Timeout time.Duration `env:"TIMEOUT" json:"-"`

	// LogLevel sets the zerolog level for the log file.
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// NoColor disables ANSI styling on stdout.
	NoColor bool `env:"NO_COLOR" json:"no_color"`

	// ConfigFile points at an explicit JSON config file. When empty, the
	// default path under the user config dir is used if it exists.
	ConfigFile string `env:"CONFIG" json:"-"`
}

// Load assembles the runtime configuration. The overlay (typically filled
// from command line flags) takes precedence, then environment variables,
// then the JSON config file; defaults fill whatever remains.
func Load(overlay Config) (*Config, error) {
	return newConfigBuilder().
		withOverlay(overlay).
		withEnv().
		withJSON().
		build()
}

func (c *Config) applyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendOp
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 15 * time.Minute
	}
	if c.Cache.Path == "" {
		c.Cache.Path = defaultCachePath()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "1p", "metadata.db")
}

// DefaultConfigPath returns the JSON config file consulted when none is
// specified explicitly, or "" when the user config dir cannot be resolved.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "1p", "config.json")
}
