package connect

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/w4/1p/backend"
)

// connectError is the JSON error envelope Connect wraps failures in.
type connectError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// mapHTTPError translates Connect's HTTP failures into the shared backend
// sentinels so callers handle them uniformly with the op backend.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	var decoded connectError
	if err := json.Unmarshal(resp.Body(), &decoded); err == nil && decoded.Message != "" {
		message = decoded.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", backend.ErrNotSignedIn, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", backend.ErrItemNotFound, message)
	default:
		return fmt.Errorf("connect: http %d: %s", resp.StatusCode(), message)
	}
}
