package op

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
)

// Runner executes the op binary. It exists so every other piece of this
// package can be exercised against canned outputs instead of a real
// subprocess.
type Runner interface {
	// Run invokes the tool with the given arguments. extraEnv entries are
	// appended to the inherited environment. It returns the tool's stdout;
	// a non-zero exit surfaces as a [*ToolError] carrying stderr.
	Run(ctx context.Context, extraEnv []string, args ...string) ([]byte, error)
}

type execRunner struct {
	binary string
}

func (r execRunner) Run(ctx context.Context, extraEnv []string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.binary, args...)
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ToolError{
				Args:   args,
				Stderr: strings.TrimSpace(stderr.String()),
			}
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}
