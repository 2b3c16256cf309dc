// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

// credentialRepository persists encrypted credential records. Ownership
// is enforced in every query: user_id is always part of the WHERE
// clause, so one user can never address another user's rows.
type credentialRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *credentialRepository) CreateCredential(ctx context.Context, rec models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCredentialQuery(r.db.builder(), rec)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error building query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*credentialRepository.CreateCredential").Msg("error inserting credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.GetCredential(ctx, rec.UserID, rec.PasswordID)
}

func (r *credentialRepository) ListCredentials(ctx context.Context, userID string) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCredentialsQuery(r.db.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Credential, 0)
	for rows.Next() {
		var rec models.Credential
		if err = scanCredential(rows, &rec); err != nil {
			log.Err(err).Str("func", "*credentialRepository.ListCredentials").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *credentialRepository) GetCredential(ctx context.Context, userID, passwordID string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCredentialQuery(r.db.builder(), userID, passwordID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.GetCredential").Msg("error building query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.Credential
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanCredential(row, &rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*credentialRepository.GetCredential").Msg("error scanning row")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *credentialRepository) UpdateCredential(ctx context.Context, rec models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCredentialQuery(r.db.builder(), rec)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.UpdateCredential").Msg("error building query")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.UpdateCredential").Msg("error updating credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Credential{}, ErrRecordNotFound
	}

	return r.GetCredential(ctx, rec.UserID, rec.PasswordID)
}

func (r *credentialRepository) DeleteCredential(ctx context.Context, userID, passwordID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCredentialQuery(r.db.builder(), userID, passwordID)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeleteCredential").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeleteCredential").Msg("error deleting credential")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner, rec *models.Credential) error {
	return row.Scan(
		&rec.PasswordID,
		&rec.UserID,
		&rec.DomainName,
		&rec.Username,
		&rec.Password,
		&rec.Nonce,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
}
