package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants. Sessions in this product are long-lived on
// purpose: mobile clients are expected to stay signed in for a week.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	DefaultAccessTokenTTL = 7 * 24 * time.Hour

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour

	// DefaultResetTokenTTL is the default lifetime for password-reset tokens.
	// Deliberately short; the token authorises exactly one password change.
	DefaultResetTokenTTL = time.Hour
)

// Claims are the token claims shared by access, refresh, and reset tokens.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated user.
	Username string `json:"username,omitempty"`

	// Email of the authenticated user.
	Email string `json:"email,omitempty"`

	// Role is either PROJECT_MANAGER or MEMBER.
	Role string `json:"role,omitempty"`

	// Image is the user's avatar reference, carried for display purposes.
	Image string `json:"image,omitempty"`

	// Status is the presence at issuance time (ONLINE/OFFLINE).
	Status string `json:"status,omitempty"`
}

// NewClaims builds minimally-correct claims for a user token.
func NewClaims(
	subject string,
	username, email, role, image, status string,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Username: username,
		Email:    email,
		Role:     role,
		Image:    image,
		Status:   status,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
