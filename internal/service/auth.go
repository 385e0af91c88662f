package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/pkg/cryptox"
	"github.com/taskhive/taskhive/pkg/idx"
	"github.com/taskhive/taskhive/pkg/jwtx"
	"github.com/taskhive/taskhive/pkg/slogx"
)

// VerificationCodeTTL is how long an emailed one-time code stays valid.
const VerificationCodeTTL = 10 * time.Minute

// Mailer delivers account emails. Implementations should not block the
// request path; delivery failures are logged, not surfaced to callers.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email, code string)
	SendPasswordReset(ctx context.Context, email, token string)
}

// SignupRequest carries everything needed to register an account. Which
// fields are required depends on the role: members declare a specialty,
// project managers declare their initial team roster.
type SignupRequest struct {
	Username      string
	Email         string
	Password      string
	Role          domain.Role
	Specialty     string
	TeamMemberIDs []string
	Image         string
}

type AuthService struct {
	Store    store.Store
	Tokens   *TokenService
	Verifier jwtx.Verifier
	Mailer   Mailer
}

// Signup registers a new account.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input per role.
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return domain.User{}, ErrMissingRequiredFields
	}
	if !req.Role.Valid() {
		return domain.User{}, ErrInvalidRole
	}
	switch req.Role {
	case domain.RoleMember:
		if strings.TrimSpace(req.Specialty) == "" {
			return domain.User{}, ErrSpecialtyRequired
		}
	case domain.RoleProjectManager:
		if len(req.TeamMemberIDs) == 0 {
			return domain.User{}, ErrTeamRequired
		}
	}

	// 2. Verify username and email are available.
	if _, err := s.Store.Users().GetUserByUsername(ctx, req.Username); err == nil {
		return domain.User{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check username availability", slog.Any("error", err))
		return domain.User{}, err
	}
	if _, err := s.Store.Users().GetUserByEmail(ctx, req.Email); err == nil {
		return domain.User{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Error("failed to check email availability", slog.Any("error", err))
		return domain.User{}, err
	}

	// 3. Project managers must name existing users as their roster.
	for _, memberID := range req.TeamMemberIDs {
		if _, err := s.Store.Users().GetUserByID(ctx, memberID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.User{}, ErrUserNotFound
			}
			log.Error("failed to fetch team member", slog.Any("error", err))
			return domain.User{}, err
		}
	}

	// 4. Hash the password using Argon2id.
	passwordHash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	newUser := domain.User{
		ID:           idx.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         req.Role,
		Specialty:    strings.TrimSpace(req.Specialty),
		Image:        req.Image,
		Status:       domain.StatusOffline,
	}

	// 5. Create the user and roster atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, newUser); err != nil {
			return err
		}
		for _, memberID := range req.TeamMemberIDs {
			if err := tx.Users().AddTeamMember(ctx, newUser.ID, memberID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent signup.
			return domain.User{}, ErrUsernameTaken
		}
		log.Error("failed to create user", slog.String("username", req.Username), slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", newUser.ID),
		slog.String("username", newUser.Username),
		slog.String("role", string(newUser.Role)),
	)

	return newUser.Redacted(), nil
}

// Login verifies credentials, marks the user online and issues a token
// pair. The refresh token fingerprint is stored so the token can later
// be matched during refresh.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.TokenPair, domain.User, error) {
	log := slogx.FromContext(ctx)
	now := time.Now()

	// 1. Fetch the user.
	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, domain.User{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.TokenPair{}, domain.User{}, err
	}

	// 2. Verify the password.
	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("login failed", slog.String("user_id", user.ID))
		return domain.TokenPair{}, domain.User{}, ErrInvalidCredentials
	}

	// 3. Issue tokens with the post-login presence state.
	user.Status = domain.StatusOnline
	pair, fingerprint, err := s.Tokens.IssuePair(user, now)
	if err != nil {
		log.Error("failed to issue tokens", slog.Any("error", err))
		return domain.TokenPair{}, domain.User{}, err
	}

	// 4. Store the refresh fingerprint and flip presence.
	if err := s.Store.Users().SetSession(ctx, user.ID, fingerprint, domain.StatusOnline); err != nil {
		log.Error("failed to store session", slog.Any("error", err))
		return domain.TokenPair{}, domain.User{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return pair, user.Redacted(), nil
}

// Refresh exchanges a valid refresh token for a new token pair. Tokens
// are rotated: the presented token stops working once a new pair is
// issued.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	log := slogx.FromContext(ctx)
	now := time.Now()

	// 1. Verify the token signature and expiry.
	claims, err := s.Verifier.Verify(refreshToken)
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return domain.TokenPair{}, ErrRefreshExpired
		}
		return domain.TokenPair{}, ErrInvalidRefresh
	}

	// 2. The token must still be the one on record for this user.
	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenPair{}, ErrInvalidRefresh
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return domain.TokenPair{}, err
	}
	if user.RefreshTokenHash == "" || !cryptox.FingerprintMatches(refreshToken, user.RefreshTokenHash) {
		log.Info("refresh attempted with revoked or superseded token", slog.String("user_id", user.ID))
		return domain.TokenPair{}, ErrInvalidRefresh
	}

	// 3. Rotate: mint a new pair and replace the stored fingerprint.
	pair, fingerprint, err := s.Tokens.IssuePair(user, now)
	if err != nil {
		log.Error("failed to issue tokens", slog.Any("error", err))
		return domain.TokenPair{}, err
	}
	if err := s.Store.Users().UpdateRefreshTokenHash(ctx, user.ID, fingerprint); err != nil {
		log.Error("failed to rotate refresh token", slog.Any("error", err))
		return domain.TokenPair{}, err
	}

	log.Debug("tokens refreshed", slog.String("user_id", user.ID))
	return pair, nil
}

// Logout revokes the stored refresh token and marks the user offline.
// Logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.Store.Users().ClearSession(ctx, userID, domain.StatusOffline); err != nil {
		log.Error("failed to clear session", slog.Any("error", err))
		return err
	}

	log.Info("user logged out", slog.String("user_id", userID))
	return nil
}

// RequestPasswordReset issues a short-lived reset token for the account
// behind the email, stores its fingerprint and mails the token to the
// user. Unknown emails return ErrUserNotFound.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)
	now := time.Now()

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	token, fingerprint, err := s.Tokens.IssueResetToken(user, now)
	if err != nil {
		log.Error("failed to issue reset token", slog.Any("error", err))
		return err
	}

	if err := s.Store.Users().SetResetTokenHash(ctx, user.ID, fingerprint); err != nil {
		log.Error("failed to store reset token", slog.Any("error", err))
		return err
	}

	if s.Mailer != nil {
		s.Mailer.SendPasswordReset(ctx, user.Email, token)
	}

	log.Info("password reset requested", slog.String("user_id", user.ID))
	return nil
}

// ResetPassword consumes a reset token and sets a new password. All
// outstanding sessions are revoked.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	log := slogx.FromContext(ctx)

	if newPassword == "" {
		return ErrMissingRequiredFields
	}

	// 1. Verify the token signature and expiry.
	claims, err := s.Verifier.Verify(resetToken)
	if err != nil {
		return ErrInvalidResetToken
	}

	// 2. The token must match the one on record. A consumed or
	// superseded token no longer works.
	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}
	if user.ResetTokenHash == "" || !cryptox.FingerprintMatches(resetToken, user.ResetTokenHash) {
		return ErrInvalidResetToken
	}

	// 3. Hash and swap the password, consume the token and revoke any
	// active session atomically.
	passwordHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
			return err
		}
		if err := tx.Users().ClearResetToken(ctx, user.ID); err != nil {
			return err
		}
		return tx.Users().ClearSession(ctx, user.ID, domain.StatusOffline)
	})
	if err != nil {
		log.Error("failed to reset password", slog.Any("error", err))
		return err
	}

	log.Info("password reset", slog.String("user_id", user.ID))
	return nil
}

// SendVerificationCode mails a fresh one-time code to the account behind
// the email. Any previous code is superseded.
func (s *AuthService) SendVerificationCode(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)
	now := time.Now()

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	code, err := cryptox.GenerateVerificationCode()
	if err != nil {
		log.Error("failed to generate verification code", slog.Any("error", err))
		return err
	}

	if err := s.Store.Users().SetVerificationCode(ctx, user.ID, code, now.Add(VerificationCodeTTL)); err != nil {
		log.Error("failed to store verification code", slog.Any("error", err))
		return err
	}

	if s.Mailer != nil {
		s.Mailer.SendVerificationCode(ctx, user.Email, code)
	}

	log.Info("verification code sent", slog.String("user_id", user.ID))
	return nil
}

// VerifyCode checks a one-time code. A correct code is consumed and
// cannot be used again.
func (s *AuthService) VerifyCode(ctx context.Context, email, code string) error {
	log := slogx.FromContext(ctx)
	now := time.Now()

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	if err := s.checkCode(user, code, now); err != nil {
		return err
	}

	if err := s.Store.Users().ClearVerificationCode(ctx, user.ID); err != nil {
		log.Error("failed to consume verification code", slog.Any("error", err))
		return err
	}

	log.Info("verification code accepted", slog.String("user_id", user.ID))
	return nil
}

// ResetPasswordWithCode sets a new password after verifying a one-time
// code. Used by clients that run the forgot-password flow over email
// codes instead of reset links. Sessions are revoked like ResetPassword.
func (s *AuthService) ResetPasswordWithCode(ctx context.Context, email, code, newPassword string) error {
	log := slogx.FromContext(ctx)
	now := time.Now()

	if newPassword == "" {
		return ErrMissingRequiredFields
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return err
	}

	if err := s.checkCode(user, code, now); err != nil {
		return err
	}

	passwordHash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, passwordHash); err != nil {
			return err
		}
		if err := tx.Users().ClearVerificationCode(ctx, user.ID); err != nil {
			return err
		}
		return tx.Users().ClearSession(ctx, user.ID, domain.StatusOffline)
	})
	if err != nil {
		log.Error("failed to reset password", slog.Any("error", err))
		return err
	}

	log.Info("password reset via verification code", slog.String("user_id", user.ID))
	return nil
}

func (s *AuthService) checkCode(user domain.User, code string, now time.Time) error {
	if user.VerificationCode == "" || user.VerificationCodeExpiresAt == nil {
		return ErrCodeNotFound
	}
	if now.After(*user.VerificationCodeExpiresAt) {
		return ErrCodeExpired
	}
	if !cryptox.CodeMatches(code, user.VerificationCode) {
		return ErrCodeMismatch
	}
	return nil
}
