package sqlite

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store/drivers/sqlite/gen"
)

type invitationsRepo struct {
	q *gen.Queries
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	status := inv.Status
	if status == "" {
		status = domain.InvitationPending
	}
	return mapConflict(r.q.CreateInvitation(ctx, gen.CreateInvitationParams{
		ID:        inv.ID,
		ManagerID: inv.ManagerID,
		InviteeID: inv.InviteeID,
		Status:    string(status),
	}))
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row, err := r.q.GetInvitationByID(ctx, id)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return mapInvitation(row), nil
}

func (r *invitationsRepo) UpdateInvitationStatus(
	ctx context.Context,
	id string,
	status domain.InvitationStatus,
) error {
	return r.q.UpdateInvitationStatus(ctx, gen.UpdateInvitationStatusParams{
		Status: string(status),
		ID:     id,
	})
}

func (r *invitationsRepo) HasPendingInvitation(ctx context.Context, managerID, inviteeID string) (bool, error) {
	count, err := r.q.CountPendingInvitations(ctx, gen.CountPendingInvitationsParams{
		ManagerID: managerID,
		InviteeID: inviteeID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *invitationsRepo) ListInvitationsByInvitee(
	ctx context.Context,
	inviteeID string,
) ([]domain.InvitationView, error) {
	rows, err := r.q.ListInvitationsByInvitee(ctx, inviteeID)
	if err != nil {
		return nil, err
	}
	views := make([]domain.InvitationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, mapInvitationView(row))
	}
	return views, nil
}

func (r *invitationsRepo) DeleteInvitation(ctx context.Context, id string) error {
	return r.q.DeleteInvitation(ctx, id)
}

func (r *invitationsRepo) DeleteTerminalInvitationsBefore(ctx context.Context, cutoff time.Time) error {
	return r.q.DeleteTerminalInvitationsBefore(ctx, cutoff)
}
