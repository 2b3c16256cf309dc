package service

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_services_mock.go -package=mock

// AuthService is the server-side account and session contract.
type AuthService interface {
	// RegisterUser creates a new account from the request's username
	// and plaintext password. The password is argon2id-hashed before
	// storage; a per-account encryption salt is generated here and
	// returned to the client at login.
	RegisterUser(ctx context.Context, username, password string) (models.User, error)

	// Login verifies the password and issues a fresh session. The
	// returned session carries the opaque identifier; only its hash is
	// persisted.
	Login(ctx context.Context, username, password string) (models.User, models.Session, error)

	// Logout invalidates the session behind the identifier. Unknown
	// identifiers are ignored.
	Logout(ctx context.Context, sessionID string) error

	// ValidateSession resolves a session identifier to the owning
	// user id, or [ErrNoSession] when the session does not exist.
	ValidateSession(ctx context.Context, sessionID string) (string, error)
}

// VaultService is the server-side CRUD contract over encrypted vault
// records. It never decrypts anything; ciphertext and nonces pass
// through opaque.
type VaultService interface {
	CreateCredential(ctx context.Context, userID string, in models.CredentialIn) (models.Credential, error)
	ListCredentials(ctx context.Context, userID string) ([]models.Credential, error)
	GetCredential(ctx context.Context, userID, passwordID string) (models.Credential, error)
	UpdateCredential(ctx context.Context, userID, passwordID string, in models.CredentialIn) (models.Credential, error)
	DeleteCredential(ctx context.Context, userID, passwordID string) error

	CreateNote(ctx context.Context, userID string, in models.NoteIn) (models.Note, error)
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID string, in models.NoteIn) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}
