package config

import "errors"

// Validation errors returned by [Config] validation when the merged
// configuration is unusable.
var (
	// ErrUnknownBackend indicates a backend kind other than "op" or
	// "connect".
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrConnectTokenRequired indicates the connect backend was selected
	// without a bearer token to authenticate with.
	ErrConnectTokenRequired = errors.New("connect backend requires a token")
	// ErrInvalidCacheTTL indicates a negative cache TTL.
	ErrInvalidCacheTTL = errors.New("cache ttl must not be negative")
	// ErrInvalidTimeout indicates a negative request timeout.
	ErrInvalidTimeout = errors.New("timeout must not be negative")
)
