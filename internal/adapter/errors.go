package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnauthorized is returned for 401 responses: missing, expired, or
	// invalid bearer token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrForbidden is returned for 403 responses: the entry exists but
	// belongs to another account.
	ErrForbidden = errors.New("access forbidden")

	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("resource not found")
)

// mapHTTPError converts a non-2xx response into a typed error. 2xx
// responses map to nil.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
