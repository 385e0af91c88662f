package store

import (
	"context"
	"errors"
	"time"

	"github.com/taskhive/taskhive/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and a Tx escape hatch for multi-step operations that must be
// atomic (e.g., responding to an invitation while adding a team member).
type Store interface {
	Users() Users
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and password recovery.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByUsername is used for signup uniqueness checks.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// SetSession stores a refresh token fingerprint and flips the presence
	// status in one update (login).
	SetSession(ctx context.Context, userID, refreshTokenHash string, status domain.Status) error

	// ClearSession drops the refresh token fingerprint and flips the
	// presence status (logout).
	ClearSession(ctx context.Context, userID string, status domain.Status) error

	// UpdateRefreshTokenHash replaces the stored refresh fingerprint
	// without touching the presence status (rotation).
	UpdateRefreshTokenHash(ctx context.Context, userID, refreshTokenHash string) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// SetResetTokenHash records the fingerprint of an issued reset token.
	SetResetTokenHash(ctx context.Context, userID, resetTokenHash string) error

	// ClearResetToken drops any outstanding reset token fingerprint.
	ClearResetToken(ctx context.Context, userID string) error

	// SetVerificationCode stores an emailed one-time code and its expiry.
	SetVerificationCode(ctx context.Context, userID, code string, expiresAt time.Time) error

	// ClearVerificationCode drops the stored code and expiry for a user.
	ClearVerificationCode(ctx context.Context, userID string) error

	// ClearExpiredVerificationCodes is housekeeping: drops all codes whose
	// expiry has passed.
	ClearExpiredVerificationCodes(ctx context.Context, now time.Time) error

	// UpdatePushToken sets the device push token for a user.
	UpdatePushToken(ctx context.Context, userID, pushToken string) error

	// DeleteUser cascades to team_members and invitations (per schema).
	DeleteUser(ctx context.Context, userID string) error

	// TeamMemberIDs lists the member ids on a manager's roster.
	TeamMemberIDs(ctx context.Context, managerID string) ([]string, error)

	// IsTeamMember reports whether memberID is already on managerID's roster.
	IsTeamMember(ctx context.Context, managerID, memberID string) (bool, error)

	// AddTeamMember adds memberID to managerID's roster. Adding an existing
	// member is a no-op (set semantics).
	AddTeamMember(ctx context.Context, managerID, memberID string) error
}

type Invitations interface {
	// CreateInvitation writes a new invitation in the Pending state.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation by id.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// UpdateInvitationStatus flips the status and bumps updated_at.
	UpdateInvitationStatus(ctx context.Context, id string, status domain.InvitationStatus) error

	// HasPendingInvitation reports whether a Pending invitation already
	// exists for the manager/invitee pair.
	HasPendingInvitation(ctx context.Context, managerID, inviteeID string) (bool, error)

	// ListInvitationsByInvitee returns all invitations addressed to a user,
	// newest first, joined with both parties' identities.
	ListInvitationsByInvitee(ctx context.Context, inviteeID string) ([]domain.InvitationView, error)

	// DeleteInvitation removes an invitation by id.
	DeleteInvitation(ctx context.Context, id string) error

	// DeleteTerminalInvitationsBefore is housekeeping: removes accepted and
	// declined invitations last updated before the cutoff.
	DeleteTerminalInvitationsBefore(ctx context.Context, cutoff time.Time) error
}
