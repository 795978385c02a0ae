package cli

import (
	"errors"
	"fmt"

	"github.com/w4/1p/backend"
	"github.com/w4/1p/internal/service"
)

// ErrNoPasswordField is returned by `show --clip` when the item carries no
// password to copy.
var ErrNoPasswordField = errors.New("item has no password field")

// friendly maps sentinel errors to the short explanations printed to stderr.
// Anything unrecognised passes through with its wrapped context intact.
func friendly(err error) error {
	switch {
	case errors.Is(err, backend.ErrItemNotFound):
		return errors.New("Couldn't find the requested item.")
	case errors.Is(err, backend.ErrNotSignedIn):
		return errors.New("not signed in: run `op signin --raw` and pass the token with --session")
	case errors.Is(err, backend.ErrNoTOTP):
		return errors.New("the item has no one-time password")
	case errors.Is(err, service.ErrOfflineCacheEmpty):
		return errors.New("offline mode needs a populated cache: run `1p cache refresh` first")
	case errors.Is(err, service.ErrCacheDisabled):
		return errors.New("the metadata cache is disabled")
	case errors.Is(err, backend.ErrBackendUnavailable):
		return fmt.Errorf("the backend is unreachable: %w", err)
	default:
		return err
	}
}
