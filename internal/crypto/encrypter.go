package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// ErrDecrypt marks a ciphertext/nonce pair inconsistent with the
// current key: wrong master password, tampered data or corrupted nonce.
var ErrDecrypt = errors.New("decryption failed")

const (
	keyLen    = 32 // 256-bit AES key
	nonceLen  = 12 // AES-GCM standard nonce size
	argonTime = 1
	argonMem  = 64 * 1024 // 64 MiB
	argonPar  = 4
)

// aesGCMEncrypter is the AES-256-GCM implementation of [Encrypter].
type aesGCMEncrypter struct {
	key  []byte
	aead cipher.AEAD
}

// NewEncrypter derives a 256-bit session key from masterPassword and
// the per-account salt with Argon2id and returns an AES-256-GCM
// [Encrypter] over it.
//
// An empty salt is a caller bug (the salt is issued at registration
// and always present on a fetched account), so NewEncrypter panics on
// it instead of returning an error.
func NewEncrypter(masterPassword string, salt []byte) Encrypter {
	if len(salt) == 0 {
		panic("crypto: NewEncrypter called with empty salt")
	}

	key := argon2.IDKey([]byte(masterPassword), salt, argonTime, argonMem, argonPar, keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		// unreachable: key is always 32 bytes
		panic(fmt.Sprintf("crypto: aes cipher: %v", err))
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		panic(fmt.Sprintf("crypto: gcm: %v", err))
	}

	return &aesGCMEncrypter{key: key, aead: aead}
}

func (e *aesGCMEncrypter) Encrypt(plaintext []byte) ([]byte, []byte, error) {
	if e.aead == nil {
		return nil, nil, fmt.Errorf("%w: encryption context destroyed", ErrDecrypt)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	return e.aead.Seal(nil, nonce, plaintext, nil), nonce, nil
}

func (e *aesGCMEncrypter) Decrypt(ciphertext, nonce []byte) ([]byte, error) {
	if e.aead == nil {
		return nil, fmt.Errorf("%w: encryption context destroyed", ErrDecrypt)
	}
	if len(nonce) != nonceLen {
		return nil, fmt.Errorf("%w: bad nonce length %d", ErrDecrypt, len(nonce))
	}

	plaintext, err := e.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// auth tag mismatch: wrong key or tampered payload
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	return plaintext, nil
}

func (e *aesGCMEncrypter) Wipe() {
	for i := range e.key {
		e.key[i] = 0
	}
	e.key = nil
	e.aead = nil
}
