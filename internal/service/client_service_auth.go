package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/vault"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	cache   *vault.Cache
	logger  *logger.Logger
}

// NewClientAuthService wires the auth service over the server adapter.
// The cache is cleared on logout so no decrypted record outlives its
// session.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, cache *vault.Cache, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, cache: cache, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, username, password string) error {
	if err := validateCredentials(username, password); err != nil {
		return err
	}

	_, err := a.adapter.Register(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	a.logger.Info().Str("username", username).Msg("account registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, username, password string) (*SessionContext, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	account, session, err := a.adapter.Login(ctx, strings.TrimSpace(username), password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	// The salt is non-empty here: the adapter rejects login responses
	// without it.
	enc := crypto.NewEncrypter(password, account.Salt)
	account.Password = ""

	a.logger.Info().Str("user_id", account.UserID).Msg("session opened")

	return &SessionContext{
		Account:   account,
		Session:   session,
		Encrypter: enc,
	}, nil
}

// Logout tears down local state first, then best-effort invalidates
// the session server-side. A dead or unreachable server never leaves
// decrypted data behind.
func (a *clientAuthService) Logout(ctx context.Context, session *SessionContext) error {
	if session == nil || session.Session.ID == "" {
		// Already logged out.
		return nil
	}

	_, err := a.adapter.Logout(ctx)

	a.cache.Clear()
	session.Clear()
	a.adapter.SetSession("")

	if err != nil {
		a.logger.Warn().Err(err).Msg("server-side logout failed, local state cleared anyway")
		return fmt.Errorf("server logout: %w", err)
	}

	a.logger.Info().Msg("session closed")
	return nil
}

func validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrEmptyUsername)
	}
	if password == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrEmptyPassword)
	}
	return nil
}
