package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
)

// vaultService implements VaultService over the credential and note
// repositories. The service validates the opaque payload shape (both
// ciphertext and nonce must be present) but never inspects contents.
type vaultService struct {
	credentialRepository store.CredentialRepository
	noteRepository       store.NoteRepository

	logger *logger.Logger
}

func NewVaultService(credentialRepository store.CredentialRepository, noteRepository store.NoteRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		credentialRepository: credentialRepository,
		noteRepository:       noteRepository,
		logger:               logger,
	}
}

func (v *vaultService) CreateCredential(ctx context.Context, userID string, in models.CredentialIn) (models.Credential, error) {
	if err := validateCredentialIn(in); err != nil {
		return models.Credential{}, err
	}

	rec := models.Credential{
		PasswordID: uuid.NewString(),
		UserID:     userID,
		DomainName: in.DomainName,
		Username:   in.Username,
		Password:   in.Password,
		Nonce:      in.Nonce,
	}

	created, err := v.credentialRepository.CreateCredential(ctx, rec)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("credential creation ended with error")
		return models.Credential{}, fmt.Errorf("credential creation ended with error: %w", err)
	}

	return created, nil
}

func (v *vaultService) ListCredentials(ctx context.Context, userID string) ([]models.Credential, error) {
	records, err := v.credentialRepository.ListCredentials(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing credentials ended with error: %w", err)
	}
	return records, nil
}

func (v *vaultService) GetCredential(ctx context.Context, userID, passwordID string) (models.Credential, error) {
	rec, err := v.credentialRepository.GetCredential(ctx, userID, passwordID)
	if err != nil {
		return models.Credential{}, mapStoreError(err)
	}
	return rec, nil
}

func (v *vaultService) UpdateCredential(ctx context.Context, userID, passwordID string, in models.CredentialIn) (models.Credential, error) {
	if err := validateCredentialIn(in); err != nil {
		return models.Credential{}, err
	}

	rec := models.Credential{
		PasswordID: passwordID,
		UserID:     userID,
		DomainName: in.DomainName,
		Username:   in.Username,
		Password:   in.Password,
		Nonce:      in.Nonce,
	}

	updated, err := v.credentialRepository.UpdateCredential(ctx, rec)
	if err != nil {
		return models.Credential{}, mapStoreError(err)
	}
	return updated, nil
}

func (v *vaultService) DeleteCredential(ctx context.Context, userID, passwordID string) error {
	if err := v.credentialRepository.DeleteCredential(ctx, userID, passwordID); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (v *vaultService) CreateNote(ctx context.Context, userID string, in models.NoteIn) (models.Note, error) {
	if err := validateNoteIn(in); err != nil {
		return models.Note{}, err
	}

	rec := models.Note{
		NoteID:       uuid.NewString(),
		UserID:       userID,
		Title:        in.Title,
		TitleNonce:   in.TitleNonce,
		Content:      in.Content,
		ContentNonce: in.ContentNonce,
	}

	created, err := v.noteRepository.CreateNote(ctx, rec)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return created, nil
}

func (v *vaultService) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	records, err := v.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}
	return records, nil
}

func (v *vaultService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	rec, err := v.noteRepository.GetNote(ctx, userID, noteID)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}
	return rec, nil
}

func (v *vaultService) UpdateNote(ctx context.Context, userID, noteID string, in models.NoteIn) (models.Note, error) {
	if err := validateNoteIn(in); err != nil {
		return models.Note{}, err
	}

	rec := models.Note{
		NoteID:       noteID,
		UserID:       userID,
		Title:        in.Title,
		TitleNonce:   in.TitleNonce,
		Content:      in.Content,
		ContentNonce: in.ContentNonce,
	}

	updated, err := v.noteRepository.UpdateNote(ctx, rec)
	if err != nil {
		return models.Note{}, mapStoreError(err)
	}
	return updated, nil
}

func (v *vaultService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := v.noteRepository.DeleteNote(ctx, userID, noteID); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func validateCredentialIn(in models.CredentialIn) error {
	if in.DomainName == "" || len(in.Password) == 0 || len(in.Nonce) == 0 {
		return ErrInvalidDataProvided
	}
	return nil
}

func validateNoteIn(in models.NoteIn) error {
	if len(in.Title) == 0 || len(in.TitleNonce) == 0 || len(in.Content) == 0 || len(in.ContentNonce) == 0 {
		return ErrInvalidDataProvided
	}
	return nil
}

func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
