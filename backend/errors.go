package backend

import "errors"

var (
	// ErrNotSignedIn indicates the provider rejected the session, either
	// because no session token was supplied or because it has expired.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrItemNotFound indicates no item matches the requested UUID.
	ErrItemNotFound = errors.New("item not found")

	// ErrNoTOTP indicates the item exists but has no one-time password
	// configured.
	ErrNoTOTP = errors.New("item has no one-time password")

	// ErrBackendUnavailable indicates the provider could not be reached at
	// all (missing binary, unreachable host).
	ErrBackendUnavailable = errors.New("backend unavailable")
)
