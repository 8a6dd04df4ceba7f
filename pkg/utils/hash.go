package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns the hex-encoded SHA-256 of the input
func HashString(input string) string {
	return HashBytes([]byte(input))
}

// HashBytes returns the hex-encoded SHA-256 of b
func HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// ETag builds a strong entity tag for a response body
func ETag(body []byte) string {
	return `"` + HashBytes(body)[:32] + `"`
}
