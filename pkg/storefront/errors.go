package storefront

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the storefront backend. Message
// carries the server-supplied "message" field when present.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("storefront: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("storefront: unexpected status %d", e.StatusCode)
}

// newAPIError builds an APIError from a failed response body. Bodies are JSON
// with an optional "message"; anything undecodable is reported by status only.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	return &APIError{StatusCode: status, Message: payload.Message}
}

// IsNotFound reports whether err is an APIError with HTTP 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
