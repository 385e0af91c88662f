package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	status := u.Status
	if status == "" {
		status = domain.StatusOffline
	}
	return mapConflict(r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Specialty:    mapStringNull(u.Specialty),
		Image:        mapStringNull(u.Image),
		Status:       string(status),
	}))
}

func (r *usersRepo) SetSession(
	ctx context.Context,
	userID, refreshTokenHash string,
	status domain.Status,
) error {
	return r.q.SetUserSession(ctx, gen.SetUserSessionParams{
		RefreshTokenHash: mapStringNull(refreshTokenHash),
		Status:           string(status),
		ID:               userID,
	})
}

func (r *usersRepo) ClearSession(ctx context.Context, userID string, status domain.Status) error {
	return r.q.ClearUserSession(ctx, gen.ClearUserSessionParams{
		Status: string(status),
		ID:     userID,
	})
}

func (r *usersRepo) UpdateRefreshTokenHash(ctx context.Context, userID, refreshTokenHash string) error {
	return r.q.UpdateUserRefreshTokenHash(ctx, gen.UpdateUserRefreshTokenHashParams{
		RefreshTokenHash: mapStringNull(refreshTokenHash),
		ID:               userID,
	})
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	return r.q.UpdateUserPasswordHash(ctx, gen.UpdateUserPasswordHashParams{
		PasswordHash: newHash,
		ID:           userID,
	})
}

func (r *usersRepo) SetResetTokenHash(ctx context.Context, userID, resetTokenHash string) error {
	return r.q.SetUserResetTokenHash(ctx, gen.SetUserResetTokenHashParams{
		ResetTokenHash: mapStringNull(resetTokenHash),
		ID:             userID,
	})
}

func (r *usersRepo) ClearResetToken(ctx context.Context, userID string) error {
	return r.q.ClearUserResetToken(ctx, userID)
}

func (r *usersRepo) SetVerificationCode(
	ctx context.Context,
	userID, code string,
	expiresAt time.Time,
) error {
	return r.q.SetUserVerificationCode(ctx, gen.SetUserVerificationCodeParams{
		VerificationCode:          mapStringNull(code),
		VerificationCodeExpiresAt: sql.NullTime{Time: expiresAt, Valid: true},
		ID:                        userID,
	})
}

func (r *usersRepo) ClearVerificationCode(ctx context.Context, userID string) error {
	return r.q.ClearUserVerificationCode(ctx, userID)
}

func (r *usersRepo) ClearExpiredVerificationCodes(ctx context.Context, now time.Time) error {
	return r.q.ClearExpiredVerificationCodes(ctx, now)
}

func (r *usersRepo) UpdatePushToken(ctx context.Context, userID, pushToken string) error {
	return r.q.UpdateUserPushToken(ctx, gen.UpdateUserPushTokenParams{
		PushToken: mapStringNull(pushToken),
		ID:        userID,
	})
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return r.q.DeleteUser(ctx, userID)
}

func (r *usersRepo) TeamMemberIDs(ctx context.Context, managerID string) ([]string, error) {
	return r.q.ListTeamMemberIDs(ctx, managerID)
}

func (r *usersRepo) IsTeamMember(ctx context.Context, managerID, memberID string) (bool, error) {
	count, err := r.q.CountTeamMember(ctx, gen.CountTeamMemberParams{
		ManagerID: managerID,
		MemberID:  memberID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *usersRepo) AddTeamMember(ctx context.Context, managerID, memberID string) error {
	return r.q.AddTeamMember(ctx, gen.AddTeamMemberParams{
		ManagerID: managerID,
		MemberID:  memberID,
	})
}
