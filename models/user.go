package models

import "time"

// User represents an account entity used for authentication.
// It doubles as the request body for register/login and as the
// persistence-layer record; sensitive fields are never serialized.
type User struct {
	// UserID is the server-assigned account identifier (UUID v4).
	UserID string `json:"user_id,omitempty"`

	// Username is the unique account login name.
	Username string `json:"username"`

	// Password carries the plaintext master password in register/login
	// request bodies only. The server stores a PHC-encoded hash, never
	// this value.
	Password string `json:"password,omitempty"`

	// PasswordHash is the PHC-encoded argon2id hash persisted server-side.
	PasswordHash string `json:"-"`

	// Salt is the per-account encryption salt issued at registration and
	// returned in the login response. It is immutable for the account's
	// lifetime and is the only key-derivation input stored remotely.
	Salt []byte `json:"salt,omitempty"`

	// CreatedAt is the account creation timestamp.
	CreatedAt time.Time `json:"-"`

	// ConnectedAt is the timestamp of the most recent successful login.
	ConnectedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
