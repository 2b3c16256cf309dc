// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/vault"
	"github.com/MKhiriev/go-secret-vault/models"
)

type vaultSyncService struct {
	adapter adapter.ServerAdapter
	enc     crypto.Encrypter
	cache   *vault.Cache
	logger  *logger.Logger
}

// NewVaultSyncService builds the sync engine for one session. The
// encrypter comes from the session context; the service dies with it.
func NewVaultSyncService(serverAdapter adapter.ServerAdapter, session *SessionContext, cache *vault.Cache, logger *logger.Logger) VaultSyncService {
	return &vaultSyncService{
		adapter: serverAdapter,
		enc:     session.Encrypter,
		cache:   cache,
		logger:  logger,
	}
}

func (s *vaultSyncService) Cache() *vault.Cache {
	return s.cache
}

// LoadAll fetches both collections before touching the cache, so a
// transport failure on either list leaves the previous state intact.
// Decrypt failures are per-record: the bad record is skipped, counted
// in the report, and the rest of the vault loads.
func (s *vaultSyncService) LoadAll(ctx context.Context) (vault.LoadReport, error) {
	creds, err := s.adapter.ListCredentials(ctx)
	if err != nil {
		return vault.LoadReport{}, fmt.Errorf("list credentials: %w", mapAdapterError(err))
	}

	notes, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return vault.LoadReport{}, fmt.Errorf("list notes: %w", mapAdapterError(err))
	}

	var report vault.LoadReport
	s.cache.Clear()

	for _, rec := range creds {
		view, openErr := s.openCredential(rec)
		if openErr != nil {
			s.logger.Warn().Str("password_id", rec.PasswordID).Err(openErr).Msg("credential skipped: does not decrypt under session key")
			report.Failures = append(report.Failures, vault.LoadFailure{Kind: "credential", ID: rec.PasswordID, Err: openErr})
			continue
		}
		s.cache.Credentials.Upsert(view.ID, view)
		report.Credentials++
	}

	for _, rec := range notes {
		view, openErr := s.openNote(rec)
		if openErr != nil {
			s.logger.Warn().Str("note_id", rec.NoteID).Err(openErr).Msg("note skipped: does not decrypt under session key")
			report.Failures = append(report.Failures, vault.LoadFailure{Kind: "note", ID: rec.NoteID, Err: openErr})
			continue
		}
		s.cache.Notes.Upsert(view.ID, view)
		report.Notes++
	}

	s.logger.Info().
		Int("credentials", report.Credentials).
		Int("notes", report.Notes).
		Int("skipped", len(report.Failures)).
		Msg("vault loaded")

	return report, nil
}

func (s *vaultSyncService) CreateCredential(ctx context.Context, domain, username, secret string) (vault.Credential, error) {
	in, err := s.sealCredential(domain, username, secret)
	if err != nil {
		return vault.Credential{}, err
	}

	rec, err := s.adapter.CreateCredential(ctx, in)
	if err != nil {
		return vault.Credential{}, mapAdapterError(err)
	}

	return s.settleCredential(rec)
}

func (s *vaultSyncService) UpdateCredential(ctx context.Context, id, domain, username, secret string) (vault.Credential, error) {
	in, err := s.sealCredential(domain, username, secret)
	if err != nil {
		return vault.Credential{}, err
	}

	rec, err := s.adapter.UpdateCredential(ctx, id, in)
	if err != nil {
		return vault.Credential{}, mapAdapterError(err)
	}

	return s.settleCredential(rec)
}

func (s *vaultSyncService) DeleteCredential(ctx context.Context, id string) error {
	if _, err := s.adapter.DeleteCredential(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	s.cache.Credentials.Remove(id)
	return nil
}

func (s *vaultSyncService) CreateNote(ctx context.Context, title, content string) (vault.Note, error) {
	in, err := s.sealNote(title, content)
	if err != nil {
		return vault.Note{}, err
	}

	rec, err := s.adapter.CreateNote(ctx, in)
	if err != nil {
		return vault.Note{}, mapAdapterError(err)
	}

	return s.settleNote(rec)
}

func (s *vaultSyncService) UpdateNote(ctx context.Context, id, title, content string) (vault.Note, error) {
	in, err := s.sealNote(title, content)
	if err != nil {
		return vault.Note{}, err
	}

	rec, err := s.adapter.UpdateNote(ctx, id, in)
	if err != nil {
		return vault.Note{}, mapAdapterError(err)
	}

	return s.settleNote(rec)
}

func (s *vaultSyncService) DeleteNote(ctx context.Context, id string) error {
	if _, err := s.adapter.DeleteNote(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	s.cache.Notes.Remove(id)
	return nil
}

// sealCredential encrypts the secret; domain and username travel in
// the clear per the wire contract.
func (s *vaultSyncService) sealCredential(domain, username, secret string) (models.CredentialIn, error) {
	ct, nonce, err := s.enc.Encrypt([]byte(secret))
	if err != nil {
		return models.CredentialIn{}, fmt.Errorf("seal credential: %w", err)
	}

	return models.CredentialIn{
		DomainName: domain,
		Username:   username,
		Password:   ct,
		Nonce:      nonce,
	}, nil
}

// openCredential decrypts a remote record into its cache view.
func (s *vaultSyncService) openCredential(rec models.Credential) (vault.Credential, error) {
	secret, err := s.enc.Decrypt(rec.Password, rec.Nonce)
	if err != nil {
		return vault.Credential{}, err
	}

	return vault.Credential{
		ID:       rec.PasswordID,
		Domain:   rec.DomainName,
		Username: rec.Username,
		Secret:   string(secret),
	}, nil
}

// sealNote encrypts title and content independently; each carries its
// own nonce.
func (s *vaultSyncService) sealNote(title, content string) (models.NoteIn, error) {
	titleCT, titleNonce, err := s.enc.Encrypt([]byte(title))
	if err != nil {
		return models.NoteIn{}, fmt.Errorf("seal note title: %w", err)
	}

	contentCT, contentNonce, err := s.enc.Encrypt([]byte(content))
	if err != nil {
		return models.NoteIn{}, fmt.Errorf("seal note content: %w", err)
	}

	return models.NoteIn{
		Title:        titleCT,
		TitleNonce:   titleNonce,
		Content:      contentCT,
		ContentNonce: contentNonce,
	}, nil
}

func (s *vaultSyncService) openNote(rec models.Note) (vault.Note, error) {
	title, err := s.enc.Decrypt(rec.Title, rec.TitleNonce)
	if err != nil {
		return vault.Note{}, fmt.Errorf("title: %w", err)
	}

	content, err := s.enc.Decrypt(rec.Content, rec.ContentNonce)
	if err != nil {
		return vault.Note{}, fmt.Errorf("content: %w", err)
	}

	return vault.Note{
		ID:      rec.NoteID,
		Title:   string(title),
		Content: string(content),
	}, nil
}

// settleCredential decrypts the server's echo of a mutation and only
// then admits it to the cache. The cache never holds a record the
// server does not.
func (s *vaultSyncService) settleCredential(rec models.Credential) (vault.Credential, error) {
	view, err := s.openCredential(rec)
	if err != nil {
		return vault.Credential{}, fmt.Errorf("server returned undecryptable credential %s: %w", rec.PasswordID, err)
	}

	s.cache.Credentials.Upsert(view.ID, view)
	return view, nil
}

func (s *vaultSyncService) settleNote(rec models.Note) (vault.Note, error) {
	view, err := s.openNote(rec)
	if err != nil {
		return vault.Note{}, fmt.Errorf("server returned undecryptable note %s: %w", rec.NoteID, err)
	}

	s.cache.Notes.Upsert(view.ID, view)
	return view, nil
}
