package http

import (
	"net/http"

	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/httpx"
)

type UserInfoHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		UserInfo Endpoint
//	@Description	Return the authenticated user's profile with credential material stripped.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	hivesdk.UserResponse	"the authenticated user"
//	@Failure		401	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/userinfo [get].
func (h *UserInfoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeUnauthenticated(w)
		return
	}

	user, err := h.UserService.GetUser(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
