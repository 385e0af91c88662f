package http

import (
	"encoding/json"
	"net/http"

	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/hivesdk"
	"github.com/taskhive/taskhive/pkg/httpx"
)

type PasswordHandler struct {
	AuthService *service.AuthService
}

// HandleForgot godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Issue a short-lived password reset token and email it to the account holder.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hivesdk.ForgotPasswordRequest	true	"Forgot password request"
//	@Success		200		{object}	hivesdk.MessageResponse			"message"
//	@Failure		400		{object}	hivesdk.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	hivesdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse			"error, error_description"
//	@Router			/v1/auth/password/forgot [post].
func (h *PasswordHandler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hivesdk.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" {
		writeBadRequest(w, "email is required")
		return
	}

	if err := h.AuthService.RequestPasswordReset(ctx, req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hivesdk.MessageResponse{
		Message: "Password reset email sent",
	})
}

// HandleReset godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Consume a reset token and set a new password. All active sessions are revoked.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hivesdk.ResetPasswordRequest	true	"Reset password request"
//	@Success		200		{object}	hivesdk.MessageResponse			"message"
//	@Failure		400		{object}	hivesdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	hivesdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse			"error, error_description"
//	@Router			/v1/auth/password/reset [post].
func (h *PasswordHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hivesdk.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.ResetToken == "" {
		writeBadRequest(w, "reset_token is required")
		return
	}

	if err := h.AuthService.ResetPassword(ctx, req.ResetToken, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hivesdk.MessageResponse{
		Message: "Password updated",
	})
}

// HandleResetWithCode godoc
//
//	@Summary		Reset Password With Code Endpoint
//	@Description	Set a new password after verifying an emailed one-time code. All active sessions are revoked.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hivesdk.ResetPasswordWithCodeRequest	true	"Reset password with code request"
//	@Success		200		{object}	hivesdk.MessageResponse					"message"
//	@Failure		400		{object}	hivesdk.ErrorResponse					"error, error_description"
//	@Failure		401		{object}	hivesdk.ErrorResponse					"error, error_description"
//	@Failure		404		{object}	hivesdk.ErrorResponse					"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse					"error, error_description"
//	@Router			/v1/auth/password/reset-with-code [post].
func (h *PasswordHandler) HandleResetWithCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hivesdk.ResetPasswordWithCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Code == "" {
		writeBadRequest(w, "email and code are required")
		return
	}

	if err := h.AuthService.ResetPasswordWithCode(ctx, req.Email, req.Code, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hivesdk.MessageResponse{
		Message: "Password updated",
	})
}
