package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token.
// Refresh and reset tokens are persisted only as fingerprints so a database
// leak never exposes a usable credential.
//
// The fingerprint is returned as a base64url-encoded string (43 chars).
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// FingerprintMatches compares a plaintext token against a stored fingerprint
// in constant time.
func FingerprintMatches(token, fingerprint string) bool {
	computed := FingerprintToken(token)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(fingerprint)) == 1
}
