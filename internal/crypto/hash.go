package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/sha3"
)

// ErrMalformedHash is returned when a stored password hash cannot be
// parsed back into its PHC components.
var ErrMalformedHash = errors.New("malformed password hash")

const (
	saltLen         = 32 // per-account encryption salt
	passwordSaltLen = 16
	sessionIDLen    = 32
)

// GenerateSalt reads a fresh 32-byte per-account encryption salt from
// the OS CSPRNG. Issued once at registration, immutable afterwards.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// HashPassword hashes a login password with Argon2id and encodes the
// result in PHC string format, embedding the parameters and salt:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<b64 salt>$<b64 digest>
func HashPassword(password string) (string, error) {
	salt := make([]byte, passwordSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	digest := argon2.IDKey([]byte(password), salt, argonTime, argonMem, argonPar, keyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMem, argonTime, argonPar,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	), nil
}

// VerifyPassword recomputes the Argon2id digest of password with the
// parameters and salt embedded in encoded and compares in constant
// time. Returns false on mismatch and an error only when encoded is
// not a parseable PHC string.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, ErrMalformedHash
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return false, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, ErrMalformedHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, ErrMalformedHash
	}

	got := argon2.IDKey([]byte(password), salt, iters, mem, par, uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// NewSessionID generates an opaque URL-safe session token from 32
// random bytes. Only its SHA3 hash is ever persisted.
func NewSessionID() (string, error) {
	raw := make([]byte, sessionIDLen)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// HashSessionID returns the hex SHA3-256 digest of a session id, the
// form under which sessions are stored and looked up server-side.
func HashSessionID(sessionID string) string {
	sum := sha3.Sum256([]byte(sessionID))
	return hex.EncodeToString(sum[:])
}
