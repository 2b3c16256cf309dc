package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

// noteRepository persists encrypted note records. Like the credential
// repository, every query scopes on user_id.
type noteRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		db:     db,
		logger: logger,
	}
}

func (r *noteRepository) CreateNote(ctx context.Context, rec models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(r.db.builder(), rec)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*noteRepository.CreateNote").Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.GetNote(ctx, rec.UserID, rec.NoteID)
}

func (r *noteRepository) ListNotes(ctx context.Context, userID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(r.db.builder(), userID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Note, 0)
	for rows.Next() {
		var rec models.Note
		if err = scanNote(rows, &rec); err != nil {
			log.Err(err).Str("func", "*noteRepository.ListNotes").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *noteRepository) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNoteQuery(r.db.builder(), userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rec models.Note
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = scanNote(row, &rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrRecordNotFound
		}
		log.Err(err).Str("func", "*noteRepository.GetNote").Msg("error scanning row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, rec models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(r.db.builder(), rec)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error building query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.UpdateNote").Msg("error updating note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Note{}, ErrRecordNotFound
	}

	return r.GetNote(ctx, rec.UserID, rec.NoteID)
}

func (r *noteRepository) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(r.db.builder(), userID, noteID)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.DeleteNote").Msg("error deleting note")
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

func scanNote(row rowScanner, rec *models.Note) error {
	return row.Scan(
		&rec.NoteID,
		&rec.UserID,
		&rec.Title,
		&rec.TitleNonce,
		&rec.Content,
		&rec.ContentNonce,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
}
