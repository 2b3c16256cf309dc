package models

import "time"

// Credential is the wire and persistence shape of a stored login.
// DomainName and Username travel in plaintext; Password is ciphertext
// and is only meaningful together with its Nonce.
type Credential struct {
	PasswordID string `json:"password_id"`
	UserID     string `json:"-"`
	DomainName string `json:"domain_name"`
	Username   string `json:"username"`
	Password   []byte `json:"password"`
	Nonce      []byte `json:"nonce"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// CredentialIn is the request body for credential create/update calls.
type CredentialIn struct {
	DomainName string `json:"domain_name"`
	Username   string `json:"username"`
	Password   []byte `json:"password"`
	Nonce      []byte `json:"nonce"`
}

// TableName returns the name of the database table
// associated with the Credential model.
func (c Credential) TableName() string {
	return "passwords"
}
