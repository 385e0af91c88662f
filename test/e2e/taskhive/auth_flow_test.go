package taskhive_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/pkg/hivesdk"
)

func TestSignupFlow(t *testing.T) {
	client, _ := setupServer(t)
	ctx := t.Context()

	t.Run("member signup", func(t *testing.T) {
		user := signupMember(t, client, "alice", "alice@example.com")
		require.Equal(t, "alice", user.Username)
		require.Equal(t, "alice@example.com", user.Email)
		require.Equal(t, "MEMBER", user.Role)
		require.Equal(t, "OFFLINE", user.Status)
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		_, err := client.Signup(ctx, hivesdk.SignupRequest{
			Username:  "alice",
			Email:     "alice2@example.com",
			Password:  memberPassword,
			Role:      "MEMBER",
			Specialty: "frontend",
		})
		apiErr := requireAPIError(t, err, http.StatusConflict)
		require.Equal(t, hivesdk.ErrorCodeConflict, apiErr.Code)
	})

	t.Run("member without specialty is rejected", func(t *testing.T) {
		_, err := client.Signup(ctx, hivesdk.SignupRequest{
			Username: "bob",
			Email:    "bob@example.com",
			Password: memberPassword,
			Role:     "MEMBER",
		})
		requireAPIError(t, err, http.StatusBadRequest)
	})

	t.Run("manager signup with roster", func(t *testing.T) {
		member := signupMember(t, client, "carol", "carol@example.com")
		manager := signupManager(t, client, "paula", "paula@example.com", []string{member.ID})
		require.Equal(t, "PROJECT_MANAGER", manager.Role)
	})
}

func TestLoginFlow(t *testing.T) {
	client, _ := setupServer(t)
	ctx := t.Context()
	signupMember(t, client, "alice", "alice@example.com")

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(ctx, "alice@example.com", "wrong-password")
		requireAPIError(t, err, http.StatusUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := client.Login(ctx, "nobody@example.com", memberPassword)
		requireAPIError(t, err, http.StatusNotFound)
	})

	t.Run("successful login returns a usable session", func(t *testing.T) {
		session, err := client.Login(ctx, "alice@example.com", memberPassword)
		require.NoError(t, err)
		require.NotEmpty(t, session.AccessToken())
		require.NotEmpty(t, session.RefreshToken())
		require.Equal(t, "ONLINE", session.User().Status)

		info, err := session.UserInfo(ctx)
		require.NoError(t, err)
		require.Equal(t, "alice", info.Username)
	})
}

func TestRefreshFlow(t *testing.T) {
	client, _ := setupServer(t)
	ctx := t.Context()
	signupMember(t, client, "alice", "alice@example.com")

	session, err := client.Login(ctx, "alice@example.com", memberPassword)
	require.NoError(t, err)
	oldRefresh := session.RefreshToken()

	t.Run("refresh rotates the token", func(t *testing.T) {
		resp, err := client.Refresh(ctx, oldRefresh)
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
		require.NotEmpty(t, resp.RefreshToken)

		// The superseded token is rejected.
		_, err = client.Refresh(ctx, oldRefresh)
		requireAPIError(t, err, http.StatusUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := client.Refresh(ctx, "not-a-token")
		requireAPIError(t, err, http.StatusUnauthorized)
	})
}

func TestLogoutFlow(t *testing.T) {
	client, _ := setupServer(t)
	ctx := t.Context()
	signupMember(t, client, "alice", "alice@example.com")

	session, err := client.Login(ctx, "alice@example.com", memberPassword)
	require.NoError(t, err)
	refresh := session.RefreshToken()

	require.NoError(t, session.Logout(ctx))

	// The session's refresh token died with the logout.
	_, err = client.Refresh(ctx, refresh)
	requireAPIError(t, err, http.StatusUnauthorized)

	// Logging back in works.
	again, err := client.Login(ctx, "alice@example.com", memberPassword)
	require.NoError(t, err)
	require.Equal(t, "ONLINE", again.User().Status)
}

func TestHealthEndpoints(t *testing.T) {
	client, _ := setupServer(t)

	health, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
}
