package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
)

// mapAdapterError translates transport sentinels into the service
// vocabulary so callers (the TUI above all) never import the adapter
// package to classify failures.
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %v", ErrUsernameTaken, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %v", ErrBadLogin, err)
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	default:
		return err
	}
}
