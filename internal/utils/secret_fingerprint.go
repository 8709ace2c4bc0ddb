package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// SecretFingerprint returns a short hash of a secret that is safe to log for diagnostics.
func SecretFingerprint(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	hexed := hex.EncodeToString(sum[:])
	return hexed[:8]
}
