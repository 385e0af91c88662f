// Package hivesdk is a small Go client for the TaskHive API. It mirrors
// the wire types the server speaks and wraps the auth and invitation
// endpoints behind a typed client and an authenticated session.
package hivesdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to a TaskHive deployment. It covers unauthenticated
// operations and creates authenticated Sessions via Login.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the given base URL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers a new account.
func (c *SDKClient) Signup(ctx context.Context, req SignupRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/signup", "", req)
	if err != nil {
		return nil, err
	}
	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and returns a Session holding the token pair.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", "", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, tokens), nil
}

// ForgotPassword requests a password reset token for the email.
func (c *SDKClient) ForgotPassword(ctx context.Context, email string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/password/forgot", "", ForgotPasswordRequest{Email: email})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// ResetPassword consumes a reset token and sets a new password.
func (c *SDKClient) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/password/reset", "", ResetPasswordRequest{
		ResetToken:  resetToken,
		NewPassword: newPassword,
	})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// SendVerificationCode mails a one-time code to the email.
func (c *SDKClient) SendVerificationCode(ctx context.Context, email string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/code/send", "", SendCodeRequest{Email: email})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// VerifyCode checks a one-time code. A correct code is consumed.
func (c *SDKClient) VerifyCode(ctx context.Context, email, code string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/code/verify", "", VerifyCodeRequest{
		Email: email,
		Code:  code,
	})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// ResetPasswordWithCode sets a new password after verifying a one-time code.
func (c *SDKClient) ResetPasswordWithCode(ctx context.Context, email, code, newPassword string) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/password/reset-with-code", "", ResetPasswordWithCodeRequest{
		Email:       email,
		Code:        code,
		NewPassword: newPassword,
	})
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusOK)
}

// Refresh exchanges a refresh token for a new pair without a Session.
func (c *SDKClient) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/auth/refresh", "", RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}
	var tokens TokenResponse
	if err := decodeJSON(resp, &tokens, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Livez checks service liveness.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/livez", "", nil)
	if err != nil {
		return nil, err
	}
	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
