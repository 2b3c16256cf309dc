package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, driver: "pgx", placeholder: sq.Dollar, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		UserID:       "u-1",
		Username:     "john",
		PasswordHash: "$argon2id$v=19$...",
		Salt:         []byte("salt-bytes"),
	}

	now := time.Now()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.UserID, user.Username, user.PasswordHash, user.Salt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.
		NewRows([]string{"user_id", "username", "password_hash", "salt", "created_at"}).
		AddRow(user.UserID, user.Username, user.PasswordHash, user.Salt, now)

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs(user.Username).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != "u-1" {
		t.Errorf("expected UserID=u-1, got %s", created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got: %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got: %v", err)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got: %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	salt := []byte("0123456789abcdef0123456789abcdef")
	rows := sqlmock.
		NewRows([]string{"user_id", "username", "password_hash", "salt", "created_at"}).
		AddRow("u-1", "john", "$argon2id$v=19$...", salt, time.Now())

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("john").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(context.Background(), "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != "u-1" {
		t.Errorf("expected UserID=u-1, got %s", found.UserID)
	}
	if string(found.Salt) != string(salt) {
		t.Errorf("salt mismatch")
	}
}
