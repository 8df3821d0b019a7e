package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	plaintext, digest, err := NewToken()
	require.NoError(t, err)

	assert.NotEmpty(t, plaintext)
	assert.Equal(t, Digest(plaintext), digest)
	assert.NotEqual(t, plaintext, digest)

	// sha256 hex
	assert.Len(t, digest, 64)
}

func TestNewToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		plaintext, _, err := NewToken()
		require.NoError(t, err)
		assert.False(t, seen[plaintext])
		seen[plaintext] = true
	}
}

func TestDigest_Deterministic(t *testing.T) {
	assert.Equal(t, Digest("abc"), Digest("abc"))
	assert.NotEqual(t, Digest("abc"), Digest("abd"))
}

func TestResetTokenRoundTrip(t *testing.T) {
	token, err := NewResetToken("secret", 42, "old-bcrypt-hash")
	require.NoError(t, err)

	userID, pwdDigest, err := ParseResetToken("secret", token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), userID)
	// The token binds to the password hash current at issue time, so a
	// completed reset invalidates outstanding tokens.
	assert.Equal(t, Digest("old-bcrypt-hash"), pwdDigest)
}

func TestParseResetToken_WrongSecret(t *testing.T) {
	token, err := NewResetToken("secret", 42, "hash")
	require.NoError(t, err)

	_, _, err = ParseResetToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseResetToken_Garbage(t *testing.T) {
	_, _, err := ParseResetToken("secret", "not-a-token")
	assert.Error(t, err)
}
