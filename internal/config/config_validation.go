package config

import "fmt"

// validate checks that the final merged [Config] satisfies all invariants
// before any command runs.
func (c *Config) validate() error {
	switch c.Backend {
	case BackendOp, BackendConnect:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	if c.Backend == BackendConnect && c.Connect.Token == "" {
		return ErrConnectTokenRequired
	}

	if c.Cache.TTL < 0 {
		return ErrInvalidCacheTTL
	}

	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}

	return nil
}
