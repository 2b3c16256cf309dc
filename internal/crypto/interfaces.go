// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the cryptographic boundary of go-secret-vault.
//
// The client side uses [Encrypter]: a per-session AES-256-GCM context
// whose key is derived from the master password and the per-account
// salt with Argon2id. Secret fields travel and rest only as
// (ciphertext, nonce) pairs produced by it.
//
// The server side never sees the vault key. It uses the password
// hashing and session-token helpers in hash.go, which mirror what it
// stores: a PHC-encoded Argon2id password hash and a SHA3-256 digest
// of each issued session id.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/encrypter_mock.go -package=mock

// Encrypter is the session-scoped encryption context. It is built once
// per authenticated session and destroyed on logout.
type Encrypter interface {
	// Encrypt seals plaintext under the session key with a freshly
	// generated random nonce. Identical plaintexts produce different
	// (ciphertext, nonce) pairs on every call.
	Encrypt(plaintext []byte) (ciphertext, nonce []byte, err error)

	// Decrypt opens a ciphertext/nonce pair. A wrong key, tampered
	// ciphertext or corrupted nonce yields an error wrapping
	// [ErrDecrypt]; Decrypt never panics on bad input.
	Decrypt(ciphertext, nonce []byte) ([]byte, error)

	// Wipe zeroizes the derived key material. The Encrypter is
	// unusable afterwards; every call returns an [ErrDecrypt]-wrapped
	// error.
	Wipe()
}
