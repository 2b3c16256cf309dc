// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
)

// authService is the concrete implementation of AuthService. It
// handles account registration, password verification with argon2id,
// and the opaque session lifecycle.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	logger *logger.Logger
}

// NewAuthService constructs an AuthService over the user and session
// repositories. The returned service is safe for concurrent use; all
// state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

// RegisterUser creates a new account.
//
// The password is hashed with argon2id before storage; the plaintext
// is never persisted. A fresh 32-byte encryption salt is generated for
// the account. Registration does not log the user in.
//
// Returns:
//   - [ErrInvalidDataProvided] if username or password is empty.
//   - [ErrUsernameTaken] if the username is already registered.
func (a *authService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return models.User{}, fmt.Errorf("generating account salt: %w", err)
	}

	user := models.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
	}

	registered, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registered.UserID).Msg("user registered")
	return registered, nil
}

// Login verifies the password against the stored argon2id hash and
// issues a session. An unknown username and a wrong password are
// indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return models.User{}, models.Session{}, err
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Session{}, ErrBadLogin
		}
		log.Err(err).Str("username", username).Msg("user lookup ended with error")
		return models.User{}, models.Session{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	ok, err := crypto.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("stored password hash is malformed")
		return models.User{}, models.Session{}, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return models.User{}, models.Session{}, ErrBadLogin
	}

	sessionID, err := crypto.NewSessionID()
	if err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("issuing session: %w", err)
	}

	rec := models.SessionRecord{
		SessionHash: crypto.HashSessionID(sessionID),
		UserID:      user.UserID,
	}
	if err = a.sessionRepository.CreateSession(ctx, rec); err != nil {
		return models.User{}, models.Session{}, fmt.Errorf("persisting session: %w", err)
	}

	user.PasswordHash = ""
	log.Info().Str("user_id", user.UserID).Msg("session issued")

	return user, models.Session{ID: sessionID}, nil
}

// Logout drops the session row. Unknown session identifiers are
// ignored so repeated logouts stay harmless.
func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	return a.sessionRepository.DeleteSession(ctx, crypto.HashSessionID(sessionID))
}

// ValidateSession resolves the session identifier to the owning user.
func (a *authService) ValidateSession(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrNoSession
	}

	userID, err := a.sessionRepository.FindUserIDBySessionHash(ctx, crypto.HashSessionID(sessionID))
	if err != nil {
		if errors.Is(err, store.ErrNoSessionWasFound) {
			return "", ErrNoSession
		}
		return "", fmt.Errorf("session lookup ended with error: %w", err)
	}

	return userID, nil
}
