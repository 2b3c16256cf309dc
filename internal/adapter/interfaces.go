// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and
// the vault server.
//
// The primary abstraction is [ServerAdapter], a typed view of the REST
// contract. The HTTP implementation ([NewHTTPServerAdapter]) attaches
// the opaque session identifier as the session_id header on every
// authenticated call and maps transport failures into
// [*TransportError] values carrying `errors.Is`-able sentinels, so the
// service layer never inspects HTTP status codes directly.
//
// The adapter performs no retries and no caching; the server is the
// sole source of truth for record ids and ordering.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the typed CRUD surface of the remote vault store.
// Implementations are stateless beyond the held session identifier.
type ServerAdapter interface {
	// SetSession stores the opaque session identifier attached to all
	// subsequent authenticated requests. An empty string drops it.
	SetSession(sessionID string)

	// Session returns the currently held session identifier, or an
	// empty string before login / after logout.
	Session() string

	// Register creates a new account. No session is issued; the caller
	// logs in separately.
	Register(ctx context.Context, username, password string) (models.MessageResponse, error)

	// Login authenticates the user. On success the account record
	// (including the per-account salt) comes from the response body and
	// the session identifier from the session_id response header; the
	// session is stored via SetSession before Login returns.
	Login(ctx context.Context, username, password string) (models.User, models.Session, error)

	// Logout invalidates the held session server-side. The adapter
	// keeps the (now dead) session id; the caller clears it.
	Logout(ctx context.Context) (models.MessageResponse, error)

	CreateCredential(ctx context.Context, in models.CredentialIn) (models.Credential, error)
	ListCredentials(ctx context.Context) ([]models.Credential, error)
	GetCredential(ctx context.Context, id string) (models.Credential, error)
	UpdateCredential(ctx context.Context, id string, in models.CredentialIn) (models.Credential, error)
	DeleteCredential(ctx context.Context, id string) (models.MessageResponse, error)

	CreateNote(ctx context.Context, in models.NoteIn) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, id string) (models.Note, error)
	UpdateNote(ctx context.Context, id string, in models.NoteIn) (models.Note, error)
	DeleteNote(ctx context.Context, id string) (models.MessageResponse, error)
}
