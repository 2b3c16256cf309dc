package models

import "time"

// Note is the wire and persistence shape of a secure note. Title and
// Content are encrypted independently, each with its own nonce.
type Note struct {
	NoteID       string `json:"note_id"`
	UserID       string `json:"-"`
	Title        []byte `json:"title"`
	TitleNonce   []byte `json:"title_nonce"`
	Content      []byte `json:"content"`
	ContentNonce []byte `json:"content_nonce"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// NoteIn is the request body for note create/update calls.
type NoteIn struct {
	Title        []byte `json:"title"`
	TitleNonce   []byte `json:"title_nonce"`
	Content      []byte `json:"content"`
	ContentNonce []byte `json:"content_nonce"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
