package store

import "github.com/MKhiriev/go-secret-vault/internal/logger"

// Storages bundles every repository the server services need.
type Storages struct {
	UserRepository       UserRepository
	SessionRepository    SessionRepository
	CredentialRepository CredentialRepository
	NoteRepository       NoteRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		SessionRepository:    NewSessionRepository(db, logger),
		CredentialRepository: NewCredentialRepository(db, logger),
		NoteRepository:       NewNoteRepository(db, logger),
	}
}
