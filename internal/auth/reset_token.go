package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// ResetTokenTTL is how long an issued reset token stays valid.
const ResetTokenTTL = 10 * time.Minute

// resetTokenBytes is the entropy of the raw token.
const resetTokenBytes = 20

// NewResetToken generates a random password-reset token and returns the
// raw hex token (sent to the user by email) together with its sha256
// digest (the only form that is ever persisted).
func NewResetToken() (token string, digest string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	token = hex.EncodeToString(buf)
	return token, HashResetToken(token), nil
}

// HashResetToken computes the storable digest of a raw reset token.
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ResetTokenExpiry returns the expiry timestamp for a token issued now.
func ResetTokenExpiry() time.Time {
	return time.Now().Add(ResetTokenTTL)
}
