package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	encoded, err := HashPassword("mve53!#*qwp627.[fgm31")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := VerifyPassword("mve53!#*qwp627.[fgm31", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("lin354v2v23c@^Y", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("pw")
	require.NoError(t, err)
	second, err := HashPassword("pw")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"",
		"plainsha256digest",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$garbage$c2FsdA$ZGlnZXN0",
		"$argon2id$v=19$m=65536,t=1,p=4$not-base64!$ZGlnZXN0",
	} {
		_, err := VerifyPassword("pw", encoded)
		assert.ErrorIs(t, err, ErrMalformedHash, "encoded=%q", encoded)
	}
}

func TestGenerateSalt_LengthAndUniqueness(t *testing.T) {
	first, err := GenerateSalt()
	require.NoError(t, err)
	second, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, first, 32)
	assert.NotEqual(t, first, second)
}

func TestNewSessionID_OpaqueAndUnique(t *testing.T) {
	first, err := NewSessionID()
	require.NoError(t, err)
	second, err := NewSessionID()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "=")
}

func TestHashSessionID_Deterministic(t *testing.T) {
	id, err := NewSessionID()
	require.NoError(t, err)

	assert.Equal(t, HashSessionID(id), HashSessionID(id))
	assert.NotEqual(t, HashSessionID(id), HashSessionID(id+"x"))
	assert.Len(t, HashSessionID(id), 64) // hex sha3-256
}
