package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// TokenTTL is how long a bearer token stays valid after issuance.
const TokenTTL = 7 * 24 * time.Hour

// GenerateToken returns a cryptographically random opaque bearer token.
func GenerateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
