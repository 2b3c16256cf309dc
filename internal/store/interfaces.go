// Package store contains the server's persistence layer: repositories
// over the relational database holding accounts, sessions, and the
// encrypted vault records. The server never sees plaintext secrets;
// ciphertext and nonces are stored as opaque byte columns.
package store

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	// CreateUser persists a new account. Returns
	// [ErrUsernameAlreadyExists] on a username collision.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

type SessionRepository interface {
	// CreateSession stores the hash of a freshly issued session
	// identifier. The identifier itself is never persisted.
	CreateSession(ctx context.Context, rec models.SessionRecord) error
	FindUserIDBySessionHash(ctx context.Context, sessionHash string) (string, error)
	DeleteSession(ctx context.Context, sessionHash string) error
}

type CredentialRepository interface {
	CreateCredential(ctx context.Context, rec models.Credential) (models.Credential, error)
	// ListCredentials returns the user's records in creation order.
	ListCredentials(ctx context.Context, userID string) ([]models.Credential, error)
	GetCredential(ctx context.Context, userID, passwordID string) (models.Credential, error)
	UpdateCredential(ctx context.Context, rec models.Credential) (models.Credential, error)
	DeleteCredential(ctx context.Context, userID, passwordID string) error
}

type NoteRepository interface {
	CreateNote(ctx context.Context, rec models.Note) (models.Note, error)
	// ListNotes returns the user's records in creation order.
	ListNotes(ctx context.Context, userID string) ([]models.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	UpdateNote(ctx context.Context, rec models.Note) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}
