package service

import (
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
)

// Services bundles the server-side services handed to the HTTP layer.
type Services struct {
	AuthService  AuthService
	VaultService VaultService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, storages.SessionRepository, logger),
		VaultService: NewVaultService(storages.CredentialRepository, storages.NoteRepository, logger),
	}
}
