package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/internal/store/drivers/sqlite"
	"github.com/taskhive/taskhive/pkg/jwtx"
)

// captureMailer records outgoing mail instead of sending it.
type captureMailer struct {
	mu     sync.Mutex
	codes  map[string]string
	resets map[string]string
}

func newCaptureMailer() *captureMailer {
	return &captureMailer{
		codes:  make(map[string]string),
		resets: make(map[string]string),
	}
}

func (m *captureMailer) SendVerificationCode(_ context.Context, email, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[email] = code
}

func (m *captureMailer) SendPasswordReset(_ context.Context, email, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets[email] = token
}

func (m *captureMailer) lastCode(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[email]
}

func (m *captureMailer) lastReset(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets[email]
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAuthService(t *testing.T, st store.Store) (*AuthService, *captureMailer) {
	t.Helper()

	keys := jwtx.NewHS256([]byte("test-signing-secret"))
	mailer := newCaptureMailer()
	svc := &AuthService{
		Store: st,
		Tokens: &TokenService{
			Signer:     keys,
			Issuer:     "test-issuer",
			AccessTTL:  time.Minute,
			RefreshTTL: time.Hour,
			ResetTTL:   time.Hour,
		},
		Verifier: keys,
		Mailer:   mailer,
	}
	return svc, mailer
}

func signupMember(t *testing.T, svc *AuthService, username, email string) domain.User {
	t.Helper()

	user, err := svc.Signup(context.Background(), SignupRequest{
		Username:  username,
		Email:     email,
		Password:  "correct horse battery staple",
		Role:      domain.RoleMember,
		Specialty: "backend",
	})
	require.NoError(t, err)
	return user
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("member requires specialty", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))

		_, err := svc.Signup(ctx, SignupRequest{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret-password",
			Role:     domain.RoleMember,
		})
		require.ErrorIs(t, err, ErrSpecialtyRequired)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("manager requires roster", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))

		_, err := svc.Signup(ctx, SignupRequest{
			Username: "paula",
			Email:    "paula@example.com",
			Password: "secret-password",
			Role:     domain.RoleProjectManager,
		})
		require.ErrorIs(t, err, ErrTeamRequired)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))

		_, err := svc.Signup(ctx, SignupRequest{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "secret-password",
			Role:     "ADMIN",
		})
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("manager roster must name existing users", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))

		_, err := svc.Signup(ctx, SignupRequest{
			Username:      "paula",
			Email:         "paula@example.com",
			Password:      "secret-password",
			Role:          domain.RoleProjectManager,
			TeamMemberIDs: []string{"no-such-user"},
		})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("creates member with hashed password", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)

		user := signupMember(t, svc, "alice", "alice@example.com")
		require.Equal(t, domain.RoleMember, user.Role)
		require.Equal(t, domain.StatusOffline, user.Status)
		require.Empty(t, user.PasswordHash, "returned user must be redacted")

		stored, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, stored.PasswordHash)
		require.NotEqual(t, "correct horse battery staple", stored.PasswordHash)
	})

	t.Run("creates manager with roster", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)

		member := signupMember(t, svc, "alice", "alice@example.com")

		manager, err := svc.Signup(ctx, SignupRequest{
			Username:      "paula",
			Email:         "paula@example.com",
			Password:      "secret-password",
			Role:          domain.RoleProjectManager,
			TeamMemberIDs: []string{member.ID},
		})
		require.NoError(t, err)

		ids, err := st.Users().TeamMemberIDs(ctx, manager.ID)
		require.NoError(t, err)
		require.Equal(t, []string{member.ID}, ids)
	})

	t.Run("rejects duplicate username and email", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))
		signupMember(t, svc, "alice", "alice@example.com")

		_, err := svc.Signup(ctx, SignupRequest{
			Username:  "alice",
			Email:     "other@example.com",
			Password:  "secret-password",
			Role:      domain.RoleMember,
			Specialty: "frontend",
		})
		require.ErrorIs(t, err, ErrUsernameTaken)
		require.ErrorIs(t, err, ErrConflict)

		_, err = svc.Signup(ctx, SignupRequest{
			Username:  "alice2",
			Email:     "alice@example.com",
			Password:  "secret-password",
			Role:      domain.RoleMember,
			Specialty: "frontend",
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))
		signupMember(t, svc, "alice", "alice@example.com")

		_, _, err := svc.Login(ctx, "nobody@example.com", "whatever")
		require.ErrorIs(t, err, ErrUserNotFound)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))
		signupMember(t, svc, "alice", "alice@example.com")

		_, _, err := svc.Login(ctx, "alice@example.com", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		require.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("issues tokens and stores refresh fingerprint", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)
		signupMember(t, svc, "alice", "alice@example.com")

		pair, user, err := svc.Login(ctx, "alice@example.com", "correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, pair.AccessToken)
		require.NotEmpty(t, pair.RefreshToken)
		require.Equal(t, domain.StatusOnline, user.Status)

		stored, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, domain.StatusOnline, stored.Status)
		require.NotEmpty(t, stored.RefreshTokenHash)
		require.NotEqual(t, pair.RefreshToken, stored.RefreshTokenHash)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects garbage tokens", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))

		_, err := svc.Refresh(ctx, "not-a-token")
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("rotates the refresh token", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)
		signupMember(t, svc, "alice", "alice@example.com")

		pair, _, err := svc.Login(ctx, "alice@example.com", "correct horse battery staple")
		require.NoError(t, err)

		next, err := svc.Refresh(ctx, pair.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, next.AccessToken)
		require.NotEqual(t, pair.RefreshToken, next.RefreshToken)

		// The old token no longer matches the stored fingerprint.
		_, err = svc.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)

		// The rotated one works.
		_, err = svc.Refresh(ctx, next.RefreshToken)
		require.NoError(t, err)
	})

	t.Run("rejects refresh after logout", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)
		user := signupMember(t, svc, "alice", "alice@example.com")

		pair, _, err := svc.Login(ctx, "alice@example.com", "correct horse battery staple")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, user.ID))

		_, err = svc.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("marks user offline and is idempotent", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)
		user := signupMember(t, svc, "alice", "alice@example.com")

		_, _, err := svc.Login(ctx, "alice@example.com", "correct horse battery staple")
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, user.ID))
		require.NoError(t, svc.Logout(ctx, user.ID))

		stored, err := st.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StatusOffline, stored.Status)
		require.Empty(t, stored.RefreshTokenHash)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))
		require.ErrorIs(t, svc.Logout(ctx, "no-such-user"), ErrUserNotFound)
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))
		require.ErrorIs(t, svc.RequestPasswordReset(ctx, "nobody@example.com"), ErrUserNotFound)
	})

	t.Run("full flow revokes sessions and consumes the token", func(t *testing.T) {
		st := newTestStore(t)
		svc, mailer := newAuthService(t, st)
		signupMember(t, svc, "alice", "alice@example.com")

		pair, _, err := svc.Login(ctx, "alice@example.com", "correct horse battery staple")
		require.NoError(t, err)

		require.NoError(t, svc.RequestPasswordReset(ctx, "alice@example.com"))
		token := mailer.lastReset("alice@example.com")
		require.NotEmpty(t, token)

		require.NoError(t, svc.ResetPassword(ctx, token, "a brand new password"))

		// Old password rejected, new one accepted.
		_, _, err = svc.Login(ctx, "alice@example.com", "correct horse battery staple")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, _, err = svc.Login(ctx, "alice@example.com", "a brand new password")
		require.NoError(t, err)

		// The pre-reset refresh token is dead.
		_, err = svc.Refresh(ctx, pair.RefreshToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)

		// The reset token is single use.
		require.ErrorIs(t, svc.ResetPassword(ctx, token, "yet another password"), ErrInvalidResetToken)
	})

	t.Run("rejects forged tokens", func(t *testing.T) {
		svc, _ := newAuthService(t, newTestStore(t))
		signupMember(t, svc, "alice", "alice@example.com")

		require.ErrorIs(t, svc.ResetPassword(ctx, "garbage", "new password"), ErrInvalidResetToken)
	})
}

func TestVerificationCodes(t *testing.T) {
	ctx := context.Background()

	t.Run("send and verify consumes the code", func(t *testing.T) {
		st := newTestStore(t)
		svc, mailer := newAuthService(t, st)
		signupMember(t, svc, "alice", "alice@example.com")

		require.NoError(t, svc.SendVerificationCode(ctx, "alice@example.com"))
		code := mailer.lastCode("alice@example.com")
		require.Len(t, code, 6)

		require.NoError(t, svc.VerifyCode(ctx, "alice@example.com", code))

		// Consumed: a second verify finds nothing outstanding.
		require.ErrorIs(t, svc.VerifyCode(ctx, "alice@example.com", code), ErrCodeNotFound)
	})

	t.Run("wrong code is rejected without consuming", func(t *testing.T) {
		svc, mailer := newAuthService(t, newTestStore(t))
		signupMember(t, svc, "alice", "alice@example.com")

		require.NoError(t, svc.SendVerificationCode(ctx, "alice@example.com"))
		code := mailer.lastCode("alice@example.com")

		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}
		require.ErrorIs(t, svc.VerifyCode(ctx, "alice@example.com", wrong), ErrCodeMismatch)

		// The real code still works.
		require.NoError(t, svc.VerifyCode(ctx, "alice@example.com", code))
	})

	t.Run("expired code", func(t *testing.T) {
		st := newTestStore(t)
		svc, _ := newAuthService(t, st)
		user := signupMember(t, svc, "alice", "alice@example.com")

		require.NoError(t, st.Users().SetVerificationCode(ctx, user.ID, "123456", time.Now().Add(-time.Minute)))

		require.ErrorIs(t, svc.VerifyCode(ctx, "alice@example.com", "123456"), ErrCodeExpired)
	})

	t.Run("reset password with code", func(t *testing.T) {
		svc, mailer := newAuthService(t, newTestStore(t))
		signupMember(t, svc, "alice", "alice@example.com")

		require.NoError(t, svc.SendVerificationCode(ctx, "alice@example.com"))
		code := mailer.lastCode("alice@example.com")

		require.NoError(t, svc.ResetPasswordWithCode(ctx, "alice@example.com", code, "a brand new password"))

		_, _, err := svc.Login(ctx, "alice@example.com", "a brand new password")
		require.NoError(t, err)

		// The code is consumed with the reset.
		require.ErrorIs(t,
			svc.ResetPasswordWithCode(ctx, "alice@example.com", code, "another password"),
			ErrCodeNotFound,
		)
	})
}

func TestCheckCodeExpiryBoundary(t *testing.T) {
	svc := &AuthService{}
	expiration := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	user := domain.User{
		VerificationCode:          "123456",
		VerificationCodeExpiresAt: &expiration,
	}

	t.Run("valid before expiration", func(t *testing.T) {
		require.NoError(t, svc.checkCode(user, "123456", expiration.Add(-time.Minute)))
	})

	t.Run("valid exactly at expiration", func(t *testing.T) {
		require.NoError(t, svc.checkCode(user, "123456", expiration))
	})

	t.Run("expired one millisecond later", func(t *testing.T) {
		err := svc.checkCode(user, "123456", expiration.Add(time.Millisecond))
		require.ErrorIs(t, err, ErrCodeExpired)
		require.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestHousekeepingClearsExpiredCodes(t *testing.T) {
	ctx := context.Background()

	st := newTestStore(t)
	svc, _ := newAuthService(t, st)
	alice := signupMember(t, svc, "alice", "alice@example.com")
	bob := signupMember(t, svc, "bob", "bob@example.com")

	require.NoError(t, st.Users().SetVerificationCode(ctx, alice.ID, "111111", time.Now().Add(-time.Minute)))
	require.NoError(t, st.Users().SetVerificationCode(ctx, bob.ID, "222222", time.Now().Add(10*time.Minute)))

	require.NoError(t, st.Users().ClearExpiredVerificationCodes(ctx, time.Now()))

	require.ErrorIs(t, svc.VerifyCode(ctx, "alice@example.com", "111111"), ErrCodeNotFound)
	require.NoError(t, svc.VerifyCode(ctx, "bob@example.com", "222222"))
}
