package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

// sessionRepository stores session hashes. The opaque session
// identifier handed to the client never touches the database, only its
// SHA3-256 hash does.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) CreateSession(ctx context.Context, rec models.SessionRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSessionQuery(r.db.builder(), rec)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sessionRepository) FindUserIDBySessionHash(ctx context.Context, sessionHash string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionQuery(r.db.builder(), sessionHash)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindUserIDBySessionHash").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var userID string
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoSessionWasFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindUserIDBySessionHash").Msg("error: scanning error")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return userID, nil
}

// DeleteSession removes the session row. Deleting an unknown hash is
// not an error, which keeps logout idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(r.db.builder(), sessionHash)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
