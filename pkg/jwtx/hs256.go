package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalid reports a token whose signature or structure does not check out.
	ErrInvalid = errors.New("jwtx: invalid token")
	// ErrExpired reports a structurally valid token that is past its expiry
	// (or not yet within its nbf window).
	ErrExpired = errors.New("jwtx: token expired")
)

// Signer produces signed token strings from claims.
type Signer interface {
	Sign(claims Claims) (string, error)
}

// Verifier checks a token's signature and time window and returns its claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a single process-wide HMAC secret.
// The secret is loaded once at startup and never rotated at runtime.
type HS256 struct {
	secret []byte
}

// NewHS256 builds an HS256 signer/verifier around the given secret.
func NewHS256(secret []byte) *HS256 {
	return &HS256{secret: secret}
}

func (h *HS256) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

func (h *HS256) Verify(tokenString string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(t *jwt.Token) (any, error) { return h.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrExpired
		default:
			return Claims{}, ErrInvalid
		}
	}
	return claims, nil
}
