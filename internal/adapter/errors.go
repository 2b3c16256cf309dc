package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServerError  = errors.New("server error")
	ErrUnreachable  = errors.New("server unreachable")
)

// TransportError is the uniform failure shape of the adapter: a
// connection-level error carries Status 0, a rejected request carries
// the HTTP status and the server's message body.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("transport: %s", e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// Unwrap maps the status onto the package sentinels so that callers
// can classify failures with errors.Is without touching status codes.
func (e *TransportError) Unwrap() error {
	switch {
	case e.Status == 0:
		return ErrUnreachable
	case e.Status == http.StatusBadRequest:
		return ErrBadRequest
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status == http.StatusConflict:
		return ErrConflict
	case e.Status >= http.StatusInternalServerError:
		return ErrServerError
	default:
		return nil
	}
}
