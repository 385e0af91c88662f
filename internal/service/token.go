package service

import (
	"time"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/pkg/cryptox"
	"github.com/taskhive/taskhive/pkg/jwtx"
)

// TokenService mints the three token flavours the workflows need. Access
// and refresh tokens carry the full identity claims; reset tokens only
// need the subject.
//
// The raw token is returned to the caller exactly once. Anything the
// store keeps is a fingerprint, never the token itself.
type TokenService struct {
	Signer     jwtx.Signer
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ResetTTL   time.Duration
}

func (s *TokenService) accessTTL() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

func (s *TokenService) refreshTTL() time.Duration {
	if s.RefreshTTL > 0 {
		return s.RefreshTTL
	}
	return jwtx.DefaultRefreshTokenTTL
}

func (s *TokenService) resetTTL() time.Duration {
	if s.ResetTTL > 0 {
		return s.ResetTTL
	}
	return jwtx.DefaultResetTokenTTL
}

// IssueAccessToken signs an access token for the given user.
func (s *TokenService) IssueAccessToken(u domain.User, now time.Time) (string, error) {
	claims := jwtx.NewClaims(
		u.ID, u.Username, u.Email, string(u.Role), u.Image, string(u.Status),
		s.accessTTL(), s.Issuer, now,
	)
	return s.Signer.Sign(claims)
}

// IssueRefreshToken signs a refresh token and returns both the raw token
// and its fingerprint for storage.
func (s *TokenService) IssueRefreshToken(u domain.User, now time.Time) (token, fingerprint string, err error) {
	claims := jwtx.NewClaims(
		u.ID, u.Username, u.Email, string(u.Role), u.Image, string(u.Status),
		s.refreshTTL(), s.Issuer, now,
	)
	token, err = s.Signer.Sign(claims)
	if err != nil {
		return "", "", err
	}
	return token, cryptox.FingerprintToken(token), nil
}

// IssueResetToken signs a short-lived password reset token and returns
// both the raw token and its fingerprint for storage.
func (s *TokenService) IssueResetToken(u domain.User, now time.Time) (token, fingerprint string, err error) {
	claims := jwtx.NewClaims(
		u.ID, "", u.Email, "", "", "",
		s.resetTTL(), s.Issuer, now,
	)
	token, err = s.Signer.Sign(claims)
	if err != nil {
		return "", "", err
	}
	return token, cryptox.FingerprintToken(token), nil
}

// IssuePair mints an access/refresh pair for a user. The refresh
// fingerprint is returned so the caller can persist it.
func (s *TokenService) IssuePair(u domain.User, now time.Time) (domain.TokenPair, string, error) {
	access, err := s.IssueAccessToken(u, now)
	if err != nil {
		return domain.TokenPair{}, "", err
	}
	refresh, fingerprint, err := s.IssueRefreshToken(u, now)
	if err != nil {
		return domain.TokenPair{}, "", err
	}
	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL().Seconds()),
	}, fingerprint, nil
}
