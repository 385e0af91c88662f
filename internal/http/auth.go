package http

import (
	"encoding/json"
	"net/http"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/hivesdk"
	"github.com/taskhive/taskhive/pkg/httpx"
)

type SignupHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Signup Endpoint
//	@Description	Register a new account. Members must declare a specialty; project managers must name their initial team roster.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hivesdk.SignupRequest	true	"Signup request"
//	@Success		201		{object}	hivesdk.UserResponse	"the created user"
//	@Failure		400		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		409		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hivesdk.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	user, err := h.AuthService.Signup(ctx, service.SignupRequest{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		Role:          domain.Role(req.Role),
		Specialty:     req.Specialty,
		TeamMemberIDs: req.TeamMemberIDs,
		Image:         req.Image,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with email and password. Returns an access/refresh token pair and marks the user online.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hivesdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	hivesdk.TokenResponse	"access_token, refresh_token, expires_in"
//	@Failure		400		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hivesdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, "email and password are required")
		return
	}

	pair, user, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	userResp := toUserResponse(user)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, hivesdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
		User:         &userResp,
	})
}

type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Token Refresh Endpoint
//	@Description	Exchange a valid refresh token for a new token pair. Refresh tokens rotate; the presented token stops working.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hivesdk.RefreshRequest	true	"Refresh request"
//	@Success		200		{object}	hivesdk.TokenResponse	"access_token, refresh_token, expires_in"
//	@Failure		400		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req hivesdk.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.RefreshToken == "" {
		writeBadRequest(w, "refresh_token is required")
		return
	}

	pair, err := h.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, hivesdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	})
}

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Revoke the stored refresh token and mark the user offline. Logging out twice is fine.
//	@Tags			Auth
//	@Produce		json
//	@Success		204	"no content"
//	@Failure		401	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeUnauthenticated(w)
		return
	}

	if err := h.AuthService.Logout(ctx, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
