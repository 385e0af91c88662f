package http

import (
	"encoding/json"
	"net/http"

	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/hivesdk"
	"github.com/taskhive/taskhive/pkg/httpx"
)

type VerificationCodeHandler struct {
	AuthService *service.AuthService
}

// HandleSend godoc
//
//	@Summary		Send Verification Code Endpoint
//	@Description	Mail a fresh six-digit one-time code to the account holder. Any previous code is superseded.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hivesdk.SendCodeRequest	true	"Send code request"
//	@Success		200		{object}	hivesdk.MessageResponse	"message"
//	@Failure		400		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/code/send [post].
func (h *VerificationCodeHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hivesdk.SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" {
		writeBadRequest(w, "email is required")
		return
	}

	if err := h.AuthService.SendVerificationCode(ctx, req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hivesdk.MessageResponse{
		Message: "Verification code sent",
	})
}

// HandleVerify godoc
//
//	@Summary		Verify Code Endpoint
//	@Description	Check a one-time code. A correct code is consumed and cannot be used again.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hivesdk.VerifyCodeRequest	true	"Verify code request"
//	@Success		200		{object}	hivesdk.MessageResponse		"message"
//	@Failure		400		{object}	hivesdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	hivesdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	hivesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/auth/code/verify [post].
func (h *VerificationCodeHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hivesdk.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Code == "" {
		writeBadRequest(w, "email and code are required")
		return
	}

	if err := h.AuthService.VerifyCode(ctx, req.Email, req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hivesdk.MessageResponse{
		Message: "Code verified",
	})
}
