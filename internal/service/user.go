package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/store"
	"github.com/taskhive/taskhive/pkg/slogx"
)

type UserService struct {
	Store store.Store
}

// GetUser returns a user with credential material stripped.
func (s *UserService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user.Redacted(), nil
}

// TeamMemberIDs returns the roster of a project manager.
func (s *UserService) TeamMemberIDs(ctx context.Context, managerID string) ([]string, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, managerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Store.Users().TeamMemberIDs(ctx, managerID)
}

// UpdatePushToken records the device token push notifications go to.
// An empty token unregisters the device.
func (s *UserService) UpdatePushToken(ctx context.Context, userID, pushToken string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.Store.Users().UpdatePushToken(ctx, userID, pushToken); err != nil {
		log.Error("failed to update push token", slog.Any("error", err))
		return err
	}

	log.Debug("push token updated", slog.String("user_id", userID))
	return nil
}

// DeleteUser removes an account. Roster entries and invitations
// referencing the user go with it (cascade).
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	log := slogx.FromContext(ctx)

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		log.Error("failed to delete user", slog.Any("error", err))
		return err
	}

	log.Info("user deleted", slog.String("user_id", userID))
	return nil
}
