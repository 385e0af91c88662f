package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
)

// GenerateVerificationCode returns a 6-digit numeric code drawn uniformly
// from [100000, 999999]. Used for the out-of-band password-reset path.
func GenerateVerificationCode() (string, error) {
	// 900000 possible values starting at 100000, so the code never has a
	// leading zero.
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// CodeMatches compares two short codes in constant time.
func CodeMatches(supplied, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(supplied), []byte(stored)) == 1
}
