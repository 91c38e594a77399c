package auth

import (
	"strings"
	"testing"

	"visionvault_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWTConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestGenerateAndParseToken(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken("user-1", "designer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "designer", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestParseTokenTampered(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken("user-1", "consumer")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = ParseToken(tampered)
	assert.Error(t, err)
}

func TestParseTokenWrongSecret(t *testing.T) {
	setupJWTConfig(t)

	token, err := GenerateToken("user-1", "designer")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "different-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}
