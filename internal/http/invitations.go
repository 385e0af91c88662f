package http

import (
	"encoding/json"
	"net/http"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/service"
	"github.com/taskhive/taskhive/pkg/hivesdk"
	"github.com/taskhive/taskhive/pkg/httpx"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleSend godoc
//
//	@Summary		Send Invitation Endpoint
//	@Description	Invite a user to join the caller's team. Only project managers can send invitations, and at most one pending invitation may exist per pair.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		hivesdk.InviteRequest		true	"Invite request"
//	@Success		201		{object}	hivesdk.InvitationResponse	"the created invitation"
//	@Failure		400		{object}	hivesdk.ErrorResponse		"error, error_description"
//	@Failure		401		{object}	hivesdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	hivesdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	hivesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationsHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeUnauthenticated(w)
		return
	}

	var req hivesdk.InviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.InviteeID == "" {
		writeBadRequest(w, "invitee_id is required")
		return
	}

	inv, err := h.InvitationService.SendInvitation(ctx, userID, req.InviteeID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv))
}

// HandleRespond godoc
//
//	@Summary		Respond To Invitation Endpoint
//	@Description	Accept or decline a pending invitation. Only the invitee may respond. Accepting adds them to the manager's team.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Invitation ID"
//	@Param			request	body		hivesdk.RespondInvitationRequest	true	"Response, Accepted or Declined"
//	@Success		200		{object}	hivesdk.MessageResponse				"message"
//	@Failure		400		{object}	hivesdk.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	hivesdk.ErrorResponse				"error, error_description"
//	@Failure		404		{object}	hivesdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	hivesdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	hivesdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/respond [patch].
func (h *InvitationsHandler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		writeUnauthenticated(w)
		return
	}

	invitationID := r.PathValue("id")
	if invitationID == "" {
		writeBadRequest(w, "invitation id is required")
		return
	}

	var req hivesdk.RespondInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	message, err := h.InvitationService.RespondToInvitation(
		ctx, invitationID, userID, domain.InvitationStatus(req.Status),
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, hivesdk.MessageResponse{Message: message})
}

// HandleList godoc
//
//	@Summary		List User Invitations Endpoint
//	@Description	List every invitation addressed to a user, newest first, with both parties' identities resolved.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string							true	"User ID"
//	@Success		200	{object}	hivesdk.InvitationListResponse	"invitations"
//	@Failure		401	{object}	hivesdk.ErrorResponse			"error, error_description"
//	@Failure		404	{object}	hivesdk.ErrorResponse			"error, error_description"
//	@Failure		500	{object}	hivesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/users/{id}/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := r.PathValue("id")
	if userID == "" {
		writeBadRequest(w, "user id is required")
		return
	}

	views, err := h.InvitationService.UserInvitations(ctx, userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	invitations := make([]hivesdk.InvitationResponse, 0, len(views))
	for _, v := range views {
		invitations = append(invitations, toInvitationViewResponse(v))
	}

	httpx.WriteJSON(w, http.StatusOK, hivesdk.InvitationListResponse{Invitations: invitations})
}

// HandleDelete godoc
//
//	@Summary		Delete Invitation Endpoint
//	@Description	Remove an invitation record entirely.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path	string	true	"Invitation ID"
//	@Success		204	"no content"
//	@Failure		401	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	hivesdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id} [delete].
func (h *InvitationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invitationID := r.PathValue("id")
	if invitationID == "" {
		writeBadRequest(w, "invitation id is required")
		return
	}

	if err := h.InvitationService.DeleteInvitation(ctx, invitationID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
