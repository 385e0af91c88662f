package taskhive_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	taskhivehttp "github.com/taskhive/taskhive/internal/http"
	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/internal/store/drivers/sqlite"
	"github.com/taskhive/taskhive/pkg/hivesdk"
	"github.com/taskhive/taskhive/pkg/httpx"
	"github.com/taskhive/taskhive/pkg/jwtx"
)

/*
 * Common helpers for end-to-end tests. Each test gets its own in-process
 * server backed by an in-memory database, and drives it through the SDK
 * exactly as a real client would.
 */

const (
	memberPassword  = "Member123!"
	managerPassword = "Manager123!"
)

// TestMain relaxes the rate limit profiles before any server is built.
// E2E tests fire many rapid requests from one address and would otherwise
// trip the strict production limits.
func TestMain(m *testing.M) {
	relaxed := httpx.RateLimitConfig{
		RequestsPerWindow: 1000,
		Window:            time.Minute,
		Burst:             1000,
	}
	httpx.StrictLimit = relaxed
	httpx.ModerateLimit = relaxed
	httpx.LenientLimit = relaxed

	os.Exit(m.Run())
}

// mailbox implements service.Mailer, recording mail instead of sending it.
type mailbox struct {
	mu     sync.Mutex
	codes  map[string]string
	resets map[string]string
}

func newMailbox() *mailbox {
	return &mailbox{
		codes:  make(map[string]string),
		resets: make(map[string]string),
	}
}

func (m *mailbox) SendVerificationCode(_ context.Context, email, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[email] = code
}

func (m *mailbox) SendPasswordReset(_ context.Context, email, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets[email] = token
}

func (m *mailbox) code(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.codes[email]
}

func (m *mailbox) resetToken(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets[email]
}

// setupServer builds the full HTTP stack against an in-memory database
// and returns an SDK client pointed at it.
func setupServer(t *testing.T) (*hivesdk.SDKClient, *mailbox) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	keys := jwtx.NewHS256([]byte("e2e-signing-secret"))
	mail := newMailbox()

	tokens := &service.TokenService{
		Signer:     keys,
		Issuer:     "taskhive-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
		ResetTTL:   time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := taskhivehttp.NewRouter(keys, "test", st, logger)
	router.AuthService = &service.AuthService{
		Store:    st,
		Tokens:   tokens,
		Verifier: keys,
		Mailer:   mail,
	}
	router.UserService = &service.UserService{Store: st}
	router.InvitationService = &service.InvitationService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return hivesdk.NewSDKClient(server.URL), mail
}

// signupMember registers a MEMBER account and returns the created user.
func signupMember(t *testing.T, client *hivesdk.SDKClient, username, email string) *hivesdk.UserResponse {
	t.Helper()

	user, err := client.Signup(t.Context(), hivesdk.SignupRequest{
		Username:  username,
		Email:     email,
		Password:  memberPassword,
		Role:      "MEMBER",
		Specialty: "backend",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	return user
}

// signupManager registers a PROJECT_MANAGER account with the given roster.
func signupManager(t *testing.T, client *hivesdk.SDKClient, username, email string, teamMemberIDs []string) *hivesdk.UserResponse {
	t.Helper()

	user, err := client.Signup(t.Context(), hivesdk.SignupRequest{
		Username:      username,
		Email:         email,
		Password:      managerPassword,
		Role:          "PROJECT_MANAGER",
		TeamMemberIDs: teamMemberIDs,
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	return user
}

// requireAPIError asserts err is an *hivesdk.APIError with the given status.
func requireAPIError(t *testing.T, err error, statusCode int) *hivesdk.APIError {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*hivesdk.APIError)
	require.True(t, ok, "expected *hivesdk.APIError, got %T: %v", err, err)
	require.Equal(t, statusCode, apiErr.StatusCode)
	return apiErr
}
