package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, driver: "pgx", placeholder: sq.Dollar, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rec := models.SessionRecord{SessionHash: "hash-1", UserID: "u-1"}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(rec.SessionHash, rec.UserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateSession(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFindUserIDBySessionHash_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"user_id"}).AddRow("u-1")

	mock.ExpectQuery("SELECT user_id FROM sessions").
		WithArgs("hash-1").
		WillReturnRows(rows)

	userID, err := repo.FindUserIDBySessionHash(context.Background(), "hash-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "u-1" {
		t.Errorf("expected u-1, got %s", userID)
	}
}

func TestFindUserIDBySessionHash_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT user_id FROM sessions").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserIDBySessionHash(context.Background(), "dead-hash")
	if !errors.Is(err, ErrNoSessionWasFound) {
		t.Fatalf("expected ErrNoSessionWasFound, got: %v", err)
	}
}

func TestDeleteSession_UnknownHashIsNoError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.DeleteSession(context.Background(), "dead-hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
