package hivesdk

// SignupRequest registers a new account. Members must set Specialty;
// project managers must name at least one existing user in TeamMemberIDs.
type SignupRequest struct {
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Password      string   `json:"password"`
	Role          string   `json:"role"`
	Specialty     string   `json:"specialty,omitempty"`
	TeamMemberIDs []string `json:"team_member_ids,omitempty"`
	Image         string   `json:"image,omitempty"`
}

// UserResponse is a user with credential material stripped.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
	Image     string `json:"image,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         *UserResponse `json:"user,omitempty"`
}

// RefreshRequest exchanges a refresh token for a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ForgotPasswordRequest starts the reset-token flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest consumes a reset token.
type ResetPasswordRequest struct {
	ResetToken  string `json:"reset_token"`
	NewPassword string `json:"new_password"`
}

// SendCodeRequest mails a one-time verification code.
type SendCodeRequest struct {
	Email string `json:"email"`
}

// VerifyCodeRequest checks a one-time verification code.
type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ResetPasswordWithCodeRequest sets a new password after code verification.
type ResetPasswordWithCodeRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// InviteRequest asks a user to join the caller's team.
type InviteRequest struct {
	InviteeID string `json:"invitee_id"`
}

// InvitationResponse is a single invitation with both parties resolved.
type InvitationResponse struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	ManagerID       string `json:"manager_id"`
	ManagerUsername string `json:"manager_username"`
	ManagerEmail    string `json:"manager_email"`
	ManagerImage    string `json:"manager_image,omitempty"`
	InviteeID       string `json:"invitee_id"`
	InviteeUsername string `json:"invitee_username"`
	InviteeEmail    string `json:"invitee_email"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// InvitationListResponse wraps the invitations addressed to a user.
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// RespondInvitationRequest resolves a pending invitation.
// Status must be "Accepted" or "Declined".
type RespondInvitationRequest struct {
	Status string `json:"status"`
}

// MessageResponse is a user-facing outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TeamResponse lists the user IDs on a manager's team.
type TeamResponse struct {
	MemberIDs []string `json:"member_ids"`
}

// PushTokenRequest registers the device token notifications go to.
type PushTokenRequest struct {
	PushToken string `json:"push_token"`
}

// ErrorResponse is the error payload all endpoints return on failure.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthResponse reports service liveness and readiness.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Uptime  string        `json:"uptime"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks details the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
