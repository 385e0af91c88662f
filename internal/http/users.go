package http

import (
	"encoding/json"
	"net/http"

	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/hivesdk"
	"github.com/taskhive/taskhive/pkg/httpx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandlePushToken godoc
//
//	@Summary		Update Push Token Endpoint
//	@Description	Register the device token push notifications go to. An empty token unregisters the device.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body	hivesdk.PushTokenRequest	true	"Push token request"
//	@Success		204		"no content"
//	@Failure		400		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/me/push-token [put].
func (h *UsersHandler) HandlePushToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeUnauthenticated(w)
		return
	}

	var req hivesdk.PushTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	if err := h.UserService.UpdatePushToken(ctx, userID, req.PushToken); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleTeam godoc
//
//	@Summary		Team Roster Endpoint
//	@Description	List the user IDs on the authenticated manager's team. Members have an empty roster.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	hivesdk.TeamResponse	"member_ids"
//	@Failure		401	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/me/team [get].
func (h *UsersHandler) HandleTeam(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeUnauthenticated(w)
		return
	}

	ids, err := h.UserService.TeamMemberIDs(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	httpx.WriteJSON(w, http.StatusOK, hivesdk.TeamResponse{MemberIDs: ids})
}

// HandleDelete godoc
//
//	@Summary		Delete Account Endpoint
//	@Description	Delete the authenticated user's account. Team roster entries and invitations referencing it are removed as well.
//	@Tags			Users
//	@Produce		json
//	@Success		204	"no content"
//	@Failure		401	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/me [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeUnauthenticated(w)
		return
	}

	if err := h.UserService.DeleteUser(ctx, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
