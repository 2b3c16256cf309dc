package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-secret-vault/models"
)

// Column sets shared by the builders and the row scanners. Order here
// must match the Scan calls in the repositories.
var (
	userColumns       = []string{"user_id", "username", "password_hash", "salt", "created_at"}
	credentialColumns = []string{"password_id", "user_id", "domain_name", "username", "password", "nonce", "created_at", "updated_at"}
	noteColumns       = []string{"note_id", "user_id", "title", "title_nonce", "content", "content_nonce", "created_at", "updated_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.
		Insert(user.TableName()).
		Columns("user_id", "username", "password_hash", "salt").
		Values(user.UserID, user.Username, user.PasswordHash, user.Salt).
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertSessionQuery(b sq.StatementBuilderType, rec models.SessionRecord) (string, []any, error) {
	return b.
		Insert(rec.TableName()).
		Columns("session_hash", "user_id").
		Values(rec.SessionHash, rec.UserID).
		ToSql()
}

func buildFindSessionQuery(b sq.StatementBuilderType, sessionHash string) (string, []any, error) {
	return b.
		Select("user_id").
		From(models.SessionRecord{}.TableName()).
		Where(sq.Eq{"session_hash": sessionHash}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, sessionHash string) (string, []any, error) {
	return b.
		Delete(models.SessionRecord{}.TableName()).
		Where(sq.Eq{"session_hash": sessionHash}).
		ToSql()
}

func buildInsertCredentialQuery(b sq.StatementBuilderType, rec models.Credential) (string, []any, error) {
	return b.
		Insert(rec.TableName()).
		Columns("password_id", "user_id", "domain_name", "username", "password", "nonce").
		Values(rec.PasswordID, rec.UserID, rec.DomainName, rec.Username, rec.Password, rec.Nonce).
		ToSql()
}

func buildListCredentialsQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.
		Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

func buildGetCredentialQuery(b sq.StatementBuilderType, userID, passwordID string) (string, []any, error) {
	return b.
		Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		Where(sq.Eq{"user_id": userID, "password_id": passwordID}).
		ToSql()
}

func buildUpdateCredentialQuery(b sq.StatementBuilderType, rec models.Credential) (string, []any, error) {
	return b.
		Update(rec.TableName()).
		Set("domain_name", rec.DomainName).
		Set("username", rec.Username).
		Set("password", rec.Password).
		Set("nonce", rec.Nonce).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"user_id": rec.UserID, "password_id": rec.PasswordID}).
		ToSql()
}

func buildDeleteCredentialQuery(b sq.StatementBuilderType, userID, passwordID string) (string, []any, error) {
	return b.
		Delete(models.Credential{}.TableName()).
		Where(sq.Eq{"user_id": userID, "password_id": passwordID}).
		ToSql()
}

func buildInsertNoteQuery(b sq.StatementBuilderType, rec models.Note) (string, []any, error) {
	return b.
		Insert(rec.TableName()).
		Columns("note_id", "user_id", "title", "title_nonce", "content", "content_nonce").
		Values(rec.NoteID, rec.UserID, rec.Title, rec.TitleNonce, rec.Content, rec.ContentNonce).
		ToSql()
}

func buildListNotesQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	return b.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
}

func buildGetNoteQuery(b sq.StatementBuilderType, userID, noteID string) (string, []any, error) {
	return b.
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID, "note_id": noteID}).
		ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, rec models.Note) (string, []any, error) {
	return b.
		Update(rec.TableName()).
		Set("title", rec.Title).
		Set("title_nonce", rec.TitleNonce).
		Set("content", rec.Content).
		Set("content_nonce", rec.ContentNonce).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"user_id": rec.UserID, "note_id": rec.NoteID}).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, userID, noteID string) (string, []any, error) {
	return b.
		Delete(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": userID, "note_id": noteID}).
		ToSql()
}
