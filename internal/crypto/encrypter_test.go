// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEncrypter(t *testing.T) Encrypter {
	t.Helper()
	return NewEncrypter("master-password", []byte("per-account-salt"))
}

func TestEncrypter_RoundTrip(t *testing.T) {
	enc := testEncrypter(t)

	plaintexts := []string{"", "a", "secret123", "длинный секрет с unicode ☃"}
	for _, p := range plaintexts {
		ct, nonce, err := enc.Encrypt([]byte(p))
		require.NoError(t, err)
		require.Len(t, nonce, 12)

		got, err := enc.Decrypt(ct, nonce)
		require.NoError(t, err)
		assert.Equal(t, p, string(got))
	}
}

func TestEncrypter_FreshNoncePerCall(t *testing.T) {
	enc := testEncrypter(t)

	ct1, nonce1, err := enc.Encrypt([]byte("same plaintext"))
	require.NoError(t, err)
	ct2, nonce2, err := enc.Encrypt([]byte("same plaintext"))
	require.NoError(t, err)

	assert.NotEqual(t, nonce1, nonce2)
	assert.NotEqual(t, ct1, ct2)
}

func TestEncrypter_WrongKeyFails(t *testing.T) {
	enc := NewEncrypter("right-password", []byte("salt"))
	other := NewEncrypter("wrong-password", []byte("salt"))

	ct, nonce, err := enc.Encrypt([]byte("payload"))
	require.NoError(t, err)

	_, err = other.Decrypt(ct, nonce)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestEncrypter_TamperedCiphertextFails(t *testing.T) {
	enc := testEncrypter(t)

	ct, nonce, err := enc.Encrypt([]byte("payload"))
	require.NoError(t, err)

	ct[0] ^= 0xFF
	_, err = enc.Decrypt(ct, nonce)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestEncrypter_BadNonceFails(t *testing.T) {
	enc := testEncrypter(t)

	ct, nonce, err := enc.Encrypt([]byte("payload"))
	require.NoError(t, err)

	corrupted := append([]byte(nil), nonce...)
	corrupted[3] ^= 0x01
	_, err = enc.Decrypt(ct, corrupted)
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = enc.Decrypt(ct, nonce[:5])
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestEncrypter_SameSaltSamePasswordInteroperate(t *testing.T) {
	// two contexts over the same credentials must read each other's output,
	// this is what makes a re-login able to decrypt remote records
	salt := []byte("stable-account-salt")
	first := NewEncrypter("pw", salt)
	second := NewEncrypter("pw", salt)

	ct, nonce, err := first.Encrypt([]byte("persisted earlier"))
	require.NoError(t, err)

	got, err := second.Decrypt(ct, nonce)
	require.NoError(t, err)
	assert.Equal(t, "persisted earlier", string(got))
}

func TestEncrypter_WipeDestroysContext(t *testing.T) {
	enc := testEncrypter(t)
	ct, nonce, err := enc.Encrypt([]byte("payload"))
	require.NoError(t, err)

	enc.Wipe()

	_, _, err = enc.Encrypt([]byte("payload"))
	assert.ErrorIs(t, err, ErrDecrypt)
	_, err = enc.Decrypt(ct, nonce)
	assert.ErrorIs(t, err, ErrDecrypt)

	// Wipe twice must be safe
	enc.Wipe()
}

func TestNewEncrypter_EmptySaltPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewEncrypter("pw", nil)
	})
}
