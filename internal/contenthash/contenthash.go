// Package contenthash fingerprints text content for cache and identity
// purposes.
package contenthash

import (
	"crypto/sha256"
	"encoding/base64"
)

// Sum returns the standard-base64 SHA-256 digest of the text bytes.
// Identical text always yields an identical fingerprint.
func Sum(text string) string {
	digest := sha256.Sum256([]byte(text))
	return base64.StdEncoding.EncodeToString(digest[:])
}
