package http

import (
	"time"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/pkg/hivesdk"
)

func toUserResponse(u domain.User) hivesdk.UserResponse {
	return hivesdk.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		Specialty: u.Specialty,
		Image:     u.Image,
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toInvitationResponse(inv domain.Invitation) hivesdk.InvitationResponse {
	return hivesdk.InvitationResponse{
		ID:        inv.ID,
		Status:    string(inv.Status),
		ManagerID: inv.ManagerID,
		InviteeID: inv.InviteeID,
		CreatedAt: inv.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: inv.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toInvitationViewResponse(v domain.InvitationView) hivesdk.InvitationResponse {
	return hivesdk.InvitationResponse{
		ID:              v.ID,
		Status:          string(v.Status),
		ManagerID:       v.ManagerID,
		ManagerUsername: v.ManagerUsername,
		ManagerEmail:    v.ManagerEmail,
		ManagerImage:    v.ManagerImage,
		InviteeID:       v.InviteeID,
		InviteeUsername: v.InviteeUsername,
		InviteeEmail:    v.InviteeEmail,
		CreatedAt:       v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
