package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
)

// captureNotifier records push notifications instead of sending them.
type captureNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *captureNotifier) SendNotification(_ context.Context, pushToken, title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, pushToken)
}

func (n *captureNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

// inviteFixture seeds one manager and two members and returns the
// services wired against a shared store.
type inviteFixture struct {
	store   store.Store
	auth    *AuthService
	svc     *InvitationService
	push    *captureNotifier
	manager domain.User
	alice   domain.User
	bob     domain.User
}

func newInviteFixture(t *testing.T) *inviteFixture {
	t.Helper()

	ctx := context.Background()
	st := newTestStore(t)
	auth, _ := newAuthService(t, st)
	push := &captureNotifier{}

	alice := signupMember(t, auth, "alice", "alice@example.com")
	bob := signupMember(t, auth, "bob", "bob@example.com")

	manager, err := auth.Signup(ctx, SignupRequest{
		Username:      "paula",
		Email:         "paula@example.com",
		Password:      "secret-password",
		Role:          domain.RoleProjectManager,
		TeamMemberIDs: []string{alice.ID},
	})
	require.NoError(t, err)

	return &inviteFixture{
		store:   st,
		auth:    auth,
		svc:     &InvitationService{Store: st, Notifier: push},
		push:    push,
		manager: manager,
		alice:   alice,
		bob:     bob,
	}
}

func TestSendInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending invitation", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Equal(t, f.manager.ID, inv.ManagerID)
		require.Equal(t, f.bob.ID, inv.InviteeID)
	})

	t.Run("rejects self invitation", func(t *testing.T) {
		f := newInviteFixture(t)

		_, err := f.svc.SendInvitation(ctx, f.manager.ID, f.manager.ID)
		require.ErrorIs(t, err, ErrCannotInviteSelf)
	})

	t.Run("rejects unknown users", func(t *testing.T) {
		f := newInviteFixture(t)

		_, err := f.svc.SendInvitation(ctx, "no-such-user", f.bob.ID)
		require.ErrorIs(t, err, ErrUserNotFound)

		_, err = f.svc.SendInvitation(ctx, f.manager.ID, "no-such-user")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("only managers may invite", func(t *testing.T) {
		f := newInviteFixture(t)

		_, err := f.svc.SendInvitation(ctx, f.alice.ID, f.bob.ID)
		require.ErrorIs(t, err, ErrNotManager)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects existing team members", func(t *testing.T) {
		f := newInviteFixture(t)

		_, err := f.svc.SendInvitation(ctx, f.manager.ID, f.alice.ID)
		require.ErrorIs(t, err, ErrAlreadyTeamMember)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("one pending invitation per pair", func(t *testing.T) {
		f := newInviteFixture(t)

		_, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		_, err = f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.ErrorIs(t, err, ErrPendingInvitationExists)
	})

	t.Run("declined invitation allows a new one", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		_, err = f.svc.RespondToInvitation(ctx, inv.ID, f.bob.ID, domain.InvitationDeclined)
		require.NoError(t, err)

		_, err = f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)
	})
}

func TestRespondToInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("accept adds the invitee to the team", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		msg, err := f.svc.RespondToInvitation(ctx, inv.ID, f.bob.ID, domain.InvitationAccepted)
		require.NoError(t, err)
		require.Equal(t, MsgInvitationAccepted, msg)

		member, err := f.store.Users().IsTeamMember(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)
		require.True(t, member)

		stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, stored.Status)
	})

	t.Run("decline leaves the team untouched", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		msg, err := f.svc.RespondToInvitation(ctx, inv.ID, f.bob.ID, domain.InvitationDeclined)
		require.NoError(t, err)
		require.Equal(t, MsgInvitationDeclined, msg)

		member, err := f.store.Users().IsTeamMember(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)
		require.False(t, member)
	})

	t.Run("only the invitee may respond", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		_, err = f.svc.RespondToInvitation(ctx, inv.ID, f.alice.ID, domain.InvitationAccepted)
		require.ErrorIs(t, err, ErrNotInvitee)

		_, err = f.svc.RespondToInvitation(ctx, inv.ID, f.manager.ID, domain.InvitationAccepted)
		require.ErrorIs(t, err, ErrNotInvitee)
	})

	t.Run("rejects non terminal statuses", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		_, err = f.svc.RespondToInvitation(ctx, inv.ID, f.bob.ID, domain.InvitationPending)
		require.ErrorIs(t, err, ErrInvalidInvitationStatus)

		_, err = f.svc.RespondToInvitation(ctx, inv.ID, f.bob.ID, "Cancelled")
		require.ErrorIs(t, err, ErrInvalidInvitationStatus)
	})

	t.Run("terminal invitations stay terminal", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		_, err = f.svc.RespondToInvitation(ctx, inv.ID, f.bob.ID, domain.InvitationAccepted)
		require.NoError(t, err)

		_, err = f.svc.RespondToInvitation(ctx, inv.ID, f.bob.ID, domain.InvitationDeclined)
		require.ErrorIs(t, err, ErrInvitationClosed)
		require.ErrorIs(t, err, ErrConflict)

		stored, err := f.store.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationAccepted, stored.Status)
	})

	t.Run("unknown invitation", func(t *testing.T) {
		f := newInviteFixture(t)

		_, err := f.svc.RespondToInvitation(ctx, "no-such-invitation", f.bob.ID, domain.InvitationAccepted)
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("accept is idempotent against prior membership", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		// Bob joins the team out of band before responding.
		require.NoError(t, f.store.Users().AddTeamMember(ctx, f.manager.ID, f.bob.ID))

		_, err = f.svc.RespondToInvitation(ctx, inv.ID, f.bob.ID, domain.InvitationAccepted)
		require.NoError(t, err)

		ids, err := f.store.Users().TeamMemberIDs(ctx, f.manager.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{f.alice.ID, f.bob.ID}, ids)
	})
}

func TestUserInvitations(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		f := newInviteFixture(t)

		_, err := f.svc.UserInvitations(ctx, "no-such-user")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("lists invitations with manager details", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		views, err := f.svc.UserInvitations(ctx, f.bob.ID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Equal(t, inv.ID, views[0].ID)
		require.Equal(t, "paula", views[0].ManagerUsername)
		require.Equal(t, "bob", views[0].InviteeUsername)
		require.Equal(t, domain.InvitationPending, views[0].Status)

		// Terminal invitations remain listed until retention removes them.
		_, err = f.svc.RespondToInvitation(ctx, inv.ID, f.bob.ID, domain.InvitationDeclined)
		require.NoError(t, err)

		views, err = f.svc.UserInvitations(ctx, f.bob.ID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Equal(t, domain.InvitationDeclined, views[0].Status)
	})

	t.Run("empty list for users without invitations", func(t *testing.T) {
		f := newInviteFixture(t)

		views, err := f.svc.UserInvitations(ctx, f.alice.ID)
		require.NoError(t, err)
		require.Empty(t, views)
	})
}

func TestDeleteInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the invitation", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.SendInvitation(ctx, f.manager.ID, f.bob.ID)
		require.NoError(t, err)

		require.NoError(t, f.svc.DeleteInvitation(ctx, inv.ID))

		_, err = f.store.Invitations().GetInvitationByID(ctx, inv.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unknown invitation", func(t *testing.T) {
		f := newInviteFixture(t)
		require.ErrorIs(t, f.svc.DeleteInvitation(ctx, "no-such-invitation"), ErrInvitationNotFound)
	})
}
