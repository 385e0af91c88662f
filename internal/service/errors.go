package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every service error wraps exactly one of these so HTTP
// handlers can map outcomes with errors.Is without knowing the specific
// failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
)

// Not found.
var (
	ErrUserNotFound       = fmt.Errorf("%w: user", ErrNotFound)
	ErrInvitationNotFound = fmt.Errorf("%w: invitation", ErrNotFound)
	ErrCodeNotFound       = fmt.Errorf("%w: no verification code outstanding", ErrNotFound)
)

// Unauthorized.
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	ErrInvalidRefresh     = fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	ErrRefreshExpired     = fmt.Errorf("%w: refresh token expired", ErrUnauthorized)
	ErrInvalidResetToken  = fmt.Errorf("%w: invalid reset token", ErrUnauthorized)
	ErrCodeExpired        = fmt.Errorf("%w: verification code expired", ErrUnauthorized)
	ErrCodeMismatch       = fmt.Errorf("%w: verification code mismatch", ErrUnauthorized)
	ErrNotInvitee         = fmt.Errorf("%w: invitation belongs to another user", ErrUnauthorized)
)

// Validation.
var (
	ErrInvalidRole             = fmt.Errorf("%w: invalid role", ErrValidation)
	ErrSpecialtyRequired       = fmt.Errorf("%w: specialty is required for members", ErrValidation)
	ErrTeamRequired            = fmt.Errorf("%w: team members are required for project managers", ErrValidation)
	ErrInvalidInvitationStatus = fmt.Errorf("%w: response must be Accepted or Declined", ErrValidation)
	ErrNotManager              = fmt.Errorf("%w: only project managers can send invitations", ErrValidation)
	ErrMissingRequiredFields   = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrCannotInviteSelf        = fmt.Errorf("%w: cannot invite yourself", ErrValidation)
)

// Conflict.
var (
	ErrAlreadyTeamMember       = fmt.Errorf("%w: user is already a team member", ErrConflict)
	ErrPendingInvitationExists = fmt.Errorf("%w: a pending invitation already exists", ErrConflict)
	ErrUsernameTaken           = fmt.Errorf("%w: username already taken", ErrConflict)
	ErrEmailTaken              = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrInvitationClosed        = fmt.Errorf("%w: invitation has already been resolved", ErrConflict)
)
