package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/pkg/idx"
	"github.com/taskhive/taskhive/pkg/slogx"
)

// Outcome messages returned to the responding user.
const (
	MsgInvitationAccepted = "Invitation accepted and you have been added to the team"
	MsgInvitationDeclined = "Invitation declined"
)

// Notifier delivers best-effort push notifications. Failures are logged
// by the implementation and never surfaced to callers.
type Notifier interface {
	SendNotification(ctx context.Context, pushToken, title, body string)
}

type InvitationService struct {
	Store    store.Store
	Notifier Notifier
}

// SendInvitation creates a Pending invitation from a project manager to
// another user and pings the invitee's device if they registered one.
func (s *InvitationService) SendInvitation(ctx context.Context, managerID, inviteeID string) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	if managerID == inviteeID {
		return domain.Invitation{}, ErrCannotInviteSelf
	}

	// 1. Both parties must exist.
	manager, err := s.Store.Users().GetUserByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrUserNotFound
		}
		log.Error("failed to fetch manager", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	invitee, err := s.Store.Users().GetUserByID(ctx, inviteeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrUserNotFound
		}
		log.Error("failed to fetch invitee", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 2. Only project managers own a roster.
	if manager.Role != domain.RoleProjectManager {
		log.Warn("non-manager attempted to send invitation", slog.String("user_id", managerID))
		return domain.Invitation{}, ErrNotManager
	}

	// 3. No point inviting someone already on the roster.
	isMember, err := s.Store.Users().IsTeamMember(ctx, managerID, inviteeID)
	if err != nil {
		log.Error("failed to check team membership", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	if isMember {
		return domain.Invitation{}, ErrAlreadyTeamMember
	}

	// 4. At most one open invitation per pair.
	pending, err := s.Store.Invitations().HasPendingInvitation(ctx, managerID, inviteeID)
	if err != nil {
		log.Error("failed to check pending invitations", slog.Any("error", err))
		return domain.Invitation{}, err
	}
	if pending {
		return domain.Invitation{}, ErrPendingInvitationExists
	}

	// 5. Create the invitation. The partial unique index backs up the
	// check above under concurrency.
	inv := domain.Invitation{
		ID:        idx.New().String(),
		ManagerID: managerID,
		InviteeID: inviteeID,
		Status:    domain.InvitationPending,
	}
	if err := s.Store.Invitations().CreateInvitation(ctx, inv); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Invitation{}, ErrPendingInvitationExists
		}
		log.Error("failed to create invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	// 6. Best effort: tell the invitee's device.
	if s.Notifier != nil && invitee.PushToken != "" {
		s.Notifier.SendNotification(ctx, invitee.PushToken,
			"Team invitation",
			manager.Username+" invited you to join their team",
		)
	}

	log.Info("invitation sent",
		slog.String("invitation_id", inv.ID),
		slog.String("manager_id", managerID),
		slog.String("invitee_id", inviteeID),
	)

	return inv, nil
}

// RespondToInvitation resolves a Pending invitation. Only the invitee
// may respond, and only with a terminal status. Accepting adds the
// invitee to the manager's roster; re-adding an existing member is a
// no-op. The returned message is user-facing.
func (s *InvitationService) RespondToInvitation(
	ctx context.Context,
	invitationID, userID string,
	status domain.InvitationStatus,
) (string, error) {
	log := slogx.FromContext(ctx)

	// 1. Only terminal statuses are acceptable responses.
	if !status.Terminal() {
		return "", ErrInvalidInvitationStatus
	}

	// 2. Fetch and authorize.
	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return "", err
	}
	if inv.InviteeID != userID {
		log.Warn("user attempted to respond to another user's invitation",
			slog.String("invitation_id", invitationID),
			slog.String("user_id", userID),
		)
		return "", ErrNotInvitee
	}

	// 3. Terminal invitations never change again.
	if inv.Status.Terminal() {
		return "", ErrInvitationClosed
	}

	// 4. Resolve, and on acceptance join the roster, atomically.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().UpdateInvitationStatus(ctx, invitationID, status); err != nil {
			return err
		}
		if status == domain.InvitationAccepted {
			return tx.Users().AddTeamMember(ctx, inv.ManagerID, inv.InviteeID)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to resolve invitation", slog.Any("error", err))
		return "", err
	}

	log.Info("invitation resolved",
		slog.String("invitation_id", invitationID),
		slog.String("status", string(status)),
	)

	if status == domain.InvitationAccepted {
		return MsgInvitationAccepted, nil
	}
	return MsgInvitationDeclined, nil
}

// UserInvitations lists every invitation addressed to a user, newest
// first, with both parties' identities resolved.
func (s *InvitationService) UserInvitations(ctx context.Context, userID string) ([]domain.InvitationView, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return nil, err
	}

	views, err := s.Store.Invitations().ListInvitationsByInvitee(ctx, userID)
	if err != nil {
		log.Error("failed to list invitations", slog.Any("error", err))
		return nil, err
	}
	return views, nil
}

// DeleteInvitation removes an invitation record entirely.
func (s *InvitationService) DeleteInvitation(ctx context.Context, invitationID string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return err
	}

	if err := s.Store.Invitations().DeleteInvitation(ctx, invitationID); err != nil {
		log.Error("failed to delete invitation", slog.Any("error", err))
		return err
	}

	log.Info("invitation deleted", slog.String("invitation_id", invitationID))
	return nil
}
