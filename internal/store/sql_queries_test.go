// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-secret-vault/models"
)

// Builders matching the two connectable drivers.
var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_DB_builder_MatchesDriverPlaceholder(t *testing.T) {
	pg := &DB{placeholder: sq.Dollar}
	query, _, err := pg.builder().Select("user_id").From("users").Where(sq.Eq{"username": "alice"}).ToSql()
	require.NoError(t, err)
	require.Contains(t, query, "$1")

	lite := &DB{placeholder: sq.Question}
	query, _, err = lite.builder().Select("user_id").From("users").Where(sq.Eq{"username": "alice"}).ToSql()
	require.NoError(t, err)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")
}

func Test_buildFindUserByUsernameQuery(t *testing.T) {
	query, args, err := buildFindUserByUsernameQuery(pgBuilder, "alice")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "alice", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where")
	require.Contains(t, q, "username")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")

	for _, col := range userColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildInsertUserQuery_PlaceholderFormats(t *testing.T) {
	user := models.User{
		UserID:       "u-1",
		Username:     "alice",
		PasswordHash: "$argon2id$...",
		Salt:         []byte("salt"),
	}

	pgQuery, pgArgs, err := buildInsertUserQuery(pgBuilder, user)
	require.NoError(t, err)
	require.Len(t, pgArgs, 4)
	require.Contains(t, pgQuery, "$4")

	liteQuery, liteArgs, err := buildInsertUserQuery(sqliteBuilder, user)
	require.NoError(t, err)
	require.Len(t, liteArgs, 4)
	require.Contains(t, liteQuery, "?")
	require.NotContains(t, liteQuery, "$1")
}

func Test_buildListCredentialsQuery_OrderedByCreation(t *testing.T) {
	query, args, err := buildListCredentialsQuery(pgBuilder, "u-1")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "u-1", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from passwords")
	require.Contains(t, q, "order by created_at asc")

	for _, col := range credentialColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildUpdateCredentialQuery_ScopesOnOwner(t *testing.T) {
	rec := models.Credential{
		PasswordID: "p-1",
		UserID:     "u-1",
		DomainName: "example.com",
		Username:   "alice",
		Password:   []byte{1, 2, 3},
		Nonce:      []byte{4, 5, 6},
	}

	query, args, err := buildUpdateCredentialQuery(pgBuilder, rec)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update passwords")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "current_timestamp")

	// WHERE must carry both the record id and the owner.
	require.Contains(t, q, "password_id")
	require.Contains(t, q, "user_id")

	// 4 SET values + 2 WHERE values; CURRENT_TIMESTAMP is inlined.
	require.Len(t, args, 6)
}

func Test_buildDeleteNoteQuery_ScopesOnOwner(t *testing.T) {
	query, args, err := buildDeleteNoteQuery(pgBuilder, "u-1", "n-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from notes")
	require.Contains(t, q, "note_id")
	require.Contains(t, q, "user_id")
	require.Len(t, args, 2)
}

func Test_buildSessionQueries(t *testing.T) {
	rec := models.SessionRecord{SessionHash: "abc123", UserID: "u-1"}

	insertQ, insertArgs, err := buildInsertSessionQuery(pgBuilder, rec)
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(insertQ), "insert into sessions")
	require.Len(t, insertArgs, 2)

	findQ, findArgs, err := buildFindSessionQuery(pgBuilder, "abc123")
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(findQ), "session_hash")
	require.Equal(t, []any{"abc123"}, findArgs)

	deleteQ, deleteArgs, err := buildDeleteSessionQuery(pgBuilder, "abc123")
	require.NoError(t, err)
	require.Contains(t, strings.ToLower(deleteQ), "delete from sessions")
	require.Len(t, deleteArgs, 1)
}

func Test_buildListNotesQuery_OrderedByCreation(t *testing.T) {
	query, _, err := buildListNotesQuery(sqliteBuilder, "u-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from notes")
	require.Contains(t, q, "order by created_at asc")

	for _, col := range noteColumns {
		require.Contains(t, q, col)
	}
}
