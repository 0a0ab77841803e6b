package cleaner

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprint returns the hex SHA-256 of the UTF-8 bytes of cleaned text.
// The hash is content-addressed over the cleaned form, not the raw input, so
// payloads differing only in removed content share a fingerprint.
func fingerprint(cleanedText string) string {
	sum := sha256.Sum256([]byte(cleanedText))
	return hex.EncodeToString(sum[:])
}
