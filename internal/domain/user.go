package domain

import "time"

// Role identifies what a user is allowed to do within a team.
type Role string

const (
	// RoleProjectManager can send invitations and owns a team roster.
	RoleProjectManager Role = "PROJECT_MANAGER"

	// RoleMember is an individual contributor with a declared specialty.
	RoleMember Role = "MEMBER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleProjectManager, RoleMember:
		return true
	}
	return false
}

// Status is the user's presence state, toggled on login and logout.
type Status string

const (
	StatusOnline  Status = "ONLINE"
	StatusOffline Status = "OFFLINE"
)

// User is a registered account together with its session and
// recovery state. Credential material is stored hashed only.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role

	// Specialty is set for members, empty for project managers.
	Specialty string

	Image  string
	Status Status

	// RefreshTokenHash is a fingerprint of the most recently issued
	// refresh token, or empty when the user has no active session.
	RefreshTokenHash string

	// ResetTokenHash is a fingerprint of an outstanding password
	// reset token, or empty when none has been requested.
	ResetTokenHash string

	// VerificationCode and its expiry back the emailed one-time code
	// flow. Both are cleared once the code is consumed.
	VerificationCode          string
	VerificationCodeExpiresAt *time.Time

	// PushToken is an opaque device token for push notifications.
	PushToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Redacted returns a copy of the user safe to hand to callers:
// all hashed credential material and pending codes are stripped.
func (u User) Redacted() User {
	u.PasswordHash = ""
	u.RefreshTokenHash = ""
	u.ResetTokenHash = ""
	u.VerificationCode = ""
	u.VerificationCodeExpiresAt = nil
	return u
}
