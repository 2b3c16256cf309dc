package service

import (
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/models"
)

// SessionContext is the unit of authenticated client state. It exists
// only between a successful Login and the matching Logout; everything
// that needs the session or the key takes it explicitly instead of
// reading globals.
type SessionContext struct {
	Account models.User
	Session models.Session

	// Encrypter is keyed from the master password and the account
	// salt. Wiped on logout.
	Encrypter crypto.Encrypter
}

// Clear destroys the key material and forgets the session identifier.
// Safe to call more than once.
func (s *SessionContext) Clear() {
	if s == nil {
		return
	}
	if s.Encrypter != nil {
		s.Encrypter.Wipe()
	}
	s.Session = models.Session{}
	s.Account = models.User{}
}
