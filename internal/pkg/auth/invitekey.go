package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// InviteKeyBytes is the number of random bytes in an academy invite key.
// Hex encoding doubles it to a 32-character token.
const InviteKeyBytes = 16

// GenerateInviteKey creates a cryptographically random invite key for an academy.
func GenerateInviteKey() (string, error) {
	buf := make([]byte, InviteKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate invite key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
