// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/internal/vault"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for account
// registration and session lifecycle. Implementations derive the
// encryption key from the master password and the server-issued salt;
// the master password itself never leaves the login call.
type ClientAuthService interface {
	// Register creates a new account on the server. No session is
	// established; the caller logs in separately.
	Register(ctx context.Context, username, password string) error

	// Login authenticates against the server and returns a live
	// [*SessionContext] carrying the account, the opaque session
	// identifier, and an encrypter keyed from the master password and
	// the account salt.
	Login(ctx context.Context, username, password string) (*SessionContext, error)

	// Logout ends the session. Local state (cache, key material,
	// held session identifier) is destroyed even when the server call
	// fails, so a second Logout is a no-op.
	Logout(ctx context.Context, session *SessionContext) error
}

// VaultSyncService keeps the decrypted in-memory cache consistent with
// the remote store. Every mutation is encrypt-then-send: the cache is
// only updated from a successful server response, never optimistically.
type VaultSyncService interface {
	// LoadAll replaces the cache contents with the decrypted state of
	// the remote vault. Records that fail to decrypt are skipped and
	// reported; a transport failure leaves the cache untouched.
	LoadAll(ctx context.Context) (vault.LoadReport, error)

	CreateCredential(ctx context.Context, domain, username, secret string) (vault.Credential, error)
	UpdateCredential(ctx context.Context, id, domain, username, secret string) (vault.Credential, error)
	DeleteCredential(ctx context.Context, id string) error

	CreateNote(ctx context.Context, title, content string) (vault.Note, error)
	UpdateNote(ctx context.Context, id, title, content string) (vault.Note, error)
	DeleteNote(ctx context.Context, id string) error

	// Cache exposes the decrypted view for read paths (listing,
	// detail screens, clipboard copy).
	Cache() *vault.Cache
}
