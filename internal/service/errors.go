package service

import "errors"

var (
	// ErrOfflineCacheEmpty is returned when --offline is requested before
	// any listing has been cached.
	ErrOfflineCacheEmpty = errors.New("offline mode requires a populated cache")

	// ErrCacheDisabled is returned by cache operations when the cache has
	// been turned off in configuration.
	ErrCacheDisabled = errors.New("metadata cache is disabled")

	// ErrUnknownVault is returned when a vault selector matches none of
	// the account's vaults.
	ErrUnknownVault = errors.New("unknown vault")
)
