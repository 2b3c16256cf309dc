package models

import "time"

// Session is the opaque token authenticating requests after login.
// The raw ID lives only in client process memory; the server persists
// a SHA3-256 hash of it.
type Session struct {
	ID string `json:"-"`
}

// SessionRecord is the server-side persistence shape of a session.
type SessionRecord struct {
	SessionHash string
	UserID      string
	CreatedAt   time.Time
}

// TableName returns the name of the database table
// associated with the SessionRecord model.
func (s SessionRecord) TableName() string {
	return "sessions"
}
