package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken(t *testing.T) {
	token, digest, err := NewResetToken()
	require.NoError(t, err)

	// 20 random bytes hex-encoded.
	assert.Len(t, token, 40)
	_, err = hex.DecodeString(token)
	require.NoError(t, err)

	sum := sha256.Sum256([]byte(token))
	assert.Equal(t, hex.EncodeToString(sum[:]), digest)
	assert.NotEqual(t, token, digest)
}

func TestNewResetTokenUnique(t *testing.T) {
	first, _, err := NewResetToken()
	require.NoError(t, err)
	second, _, err := NewResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestHashResetTokenDeterministic(t *testing.T) {
	assert.Equal(t, HashResetToken("abc"), HashResetToken("abc"))
	assert.NotEqual(t, HashResetToken("abc"), HashResetToken("abd"))
}

func TestResetTokenExpiry(t *testing.T) {
	exp := ResetTokenExpiry()
	assert.WithinDuration(t, time.Now().Add(ResetTokenTTL), exp, time.Second)
}
