package hivesdk

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Session is an authenticated view of the API. It refreshes the access
// token automatically when it is close to expiring.
type Session struct {
	client *SDKClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	expiresAt    time.Time
	user         *UserResponse
}

func newSession(c *SDKClient, tokens TokenResponse) *Session {
	return &Session{
		client:       c,
		accessToken:  tokens.AccessToken,
		refreshToken: tokens.RefreshToken,
		// 30 second buffer so we refresh before the server rejects us
		expiresAt: time.Now().Add(time.Duration(tokens.ExpiresIn)*time.Second - 30*time.Second),
		user:      tokens.User,
	}
}

// User returns the identity captured at login, if the server included it.
func (s *Session) User() *UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// AccessToken returns the current access token without refreshing.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token, e.g. for persistence.
func (s *Session) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshToken
}

// getValidToken returns the access token, refreshing the pair first if
// it has expired. Refresh tokens rotate, so the stored one is replaced.
func (s *Session) getValidToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Now().Before(s.expiresAt) {
		return s.accessToken, nil
	}

	tokens, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return "", fmt.Errorf("failed to refresh session: %w", err)
	}

	s.accessToken = tokens.AccessToken
	s.refreshToken = tokens.RefreshToken
	s.expiresAt = time.Now().Add(time.Duration(tokens.ExpiresIn)*time.Second - 30*time.Second)
	return s.accessToken, nil
}

func (s *Session) doAuth(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	token, err := s.getValidToken(ctx)
	if err != nil {
		return nil, err
	}
	return s.client.doJSON(ctx, method, path, token, payload)
}

// Logout revokes the session server-side.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuth(ctx, http.MethodPost, "/v1/auth/logout", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// UserInfo returns the authenticated user's profile.
func (s *Session) UserInfo(ctx context.Context) (*UserResponse, error) {
	resp, err := s.doAuth(ctx, http.MethodGet, "/v1/userinfo", nil)
	if err != nil {
		return nil, err
	}
	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// SendInvitation invites a user to the caller's team. The caller must
// be a project manager.
func (s *Session) SendInvitation(ctx context.Context, inviteeID string) (*InvitationResponse, error) {
	resp, err := s.doAuth(ctx, http.MethodPost, "/v1/invitations", InviteRequest{InviteeID: inviteeID})
	if err != nil {
		return nil, err
	}
	var inv InvitationResponse
	if err := decodeJSON(resp, &inv, http.StatusCreated); err != nil {
		return nil, err
	}
	return &inv, nil
}

// RespondToInvitation accepts or declines a pending invitation addressed
// to the caller. Status must be "Accepted" or "Declined".
func (s *Session) RespondToInvitation(ctx context.Context, invitationID, status string) (string, error) {
	resp, err := s.doAuth(ctx, http.MethodPatch,
		"/v1/invitations/"+invitationID+"/respond",
		RespondInvitationRequest{Status: status},
	)
	if err != nil {
		return "", err
	}
	var msg MessageResponse
	if err := decodeJSON(resp, &msg, http.StatusOK); err != nil {
		return "", err
	}
	return msg.Message, nil
}

// Invitations lists the invitations addressed to a user.
func (s *Session) Invitations(ctx context.Context, userID string) ([]InvitationResponse, error) {
	resp, err := s.doAuth(ctx, http.MethodGet, "/v1/users/"+userID+"/invitations", nil)
	if err != nil {
		return nil, err
	}
	var list InvitationListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Invitations, nil
}

// Team lists the user IDs on the caller's team.
func (s *Session) Team(ctx context.Context) ([]string, error) {
	resp, err := s.doAuth(ctx, http.MethodGet, "/v1/users/me/team", nil)
	if err != nil {
		return nil, err
	}
	var team TeamResponse
	if err := decodeJSON(resp, &team, http.StatusOK); err != nil {
		return nil, err
	}
	return team.MemberIDs, nil
}

// DeleteInvitation removes an invitation record.
func (s *Session) DeleteInvitation(ctx context.Context, invitationID string) error {
	resp, err := s.doAuth(ctx, http.MethodDelete, "/v1/invitations/"+invitationID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// UpdatePushToken registers the device token notifications go to.
func (s *Session) UpdatePushToken(ctx context.Context, pushToken string) error {
	resp, err := s.doAuth(ctx, http.MethodPut, "/v1/users/me/push-token", PushTokenRequest{PushToken: pushToken})
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
