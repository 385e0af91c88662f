package domain

import "time"

// InvitationStatus is the lifecycle state of a team invitation.
// Pending is the only non-terminal state.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "Pending"
	InvitationAccepted InvitationStatus = "Accepted"
	InvitationDeclined InvitationStatus = "Declined"
)

// Valid reports whether the status is one of the known values.
func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationDeclined:
		return true
	}
	return false
}

// Terminal reports whether the status can no longer change.
func (s InvitationStatus) Terminal() bool {
	return s == InvitationAccepted || s == InvitationDeclined
}

// Invitation records a project manager asking a user to join their
// team. Once accepted or declined it is immutable.
type Invitation struct {
	ID        string
	ManagerID string
	InviteeID string
	Status    InvitationStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvitationView is an invitation joined with the identity of both
// parties, shaped for listing endpoints.
type InvitationView struct {
	ID              string
	Status          InvitationStatus
	ManagerID       string
	ManagerUsername string
	ManagerEmail    string
	ManagerImage    string
	InviteeID       string
	InviteeUsername string
	InviteeEmail    string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
