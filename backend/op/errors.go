package op

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/w4/1p/backend"
)

// ToolError carries the stderr of an op invocation that exited non-zero.
type ToolError struct {
	Args   []string
	Stderr string
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("op %s: %s", strings.Join(e.Args, " "), e.Stderr)
}

// mapRunError translates runner failures into the shared backend sentinels
// by sniffing op's stderr, so callers never have to pattern-match messages
// themselves.
func mapRunError(err error) error {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		switch {
		case strings.Contains(toolErr.Stderr, "not currently signed in"):
			return fmt.Errorf("%w: run `op signin` and pass the printed token via --session", backend.ErrNotSignedIn)
		case strings.Contains(toolErr.Stderr, "doesn't seem to be an item"):
			return fmt.Errorf("%w: %s", backend.ErrItemNotFound, toolErr.Stderr)
		case strings.Contains(toolErr.Stderr, "one-time password"):
			return fmt.Errorf("%w: %s", backend.ErrNoTOTP, toolErr.Stderr)
		}
		return toolErr
	}

	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: op binary not found in PATH, install it from https://1password.com/downloads/command-line/", backend.ErrBackendUnavailable)
	}
	return err
}
