package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx resty response into a *TransportError.
// The server answers errors with {"message": ...}; fall back to the
// raw body, then to the status text, when that shape is absent.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var msg struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &msg); err == nil && msg.Message != "" {
		body = msg.Message
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &TransportError{Status: resp.StatusCode(), Message: body}
}

// mapConnError wraps a request-level (connection, timeout, DNS) error.
func mapConnError(err error) error {
	return &TransportError{Status: 0, Message: err.Error()}
}
