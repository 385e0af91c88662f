package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskhive/taskhive/internal/store"
)

// InvitationRetention is how long resolved invitations are kept for
// history before housekeeping removes them.
const InvitationRetention = 30 * 24 * time.Hour

// HousekeepingService periodically cleans up stale database records:
// expired verification codes and long-resolved invitations.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// This is non-blocking and should be called after the database is ready.
// Call Stop() to gracefully shutdown the worker.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.cleanup()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

// cleanup performs the actual deletion of stale records.
// Each deletion is independent; failures in one won't stop the others.
func (s *HousekeepingService) cleanup() {
	ctx := context.Background()
	now := time.Now()
	s.Logger.Info("starting housekeeping cleanup")

	if err := s.Store.Users().ClearExpiredVerificationCodes(ctx, now); err != nil {
		s.Logger.Error("failed to clear expired verification codes", "error", err)
	} else {
		s.Logger.Debug("cleared expired verification codes")
	}

	cutoff := now.Add(-InvitationRetention)
	if err := s.Store.Invitations().DeleteTerminalInvitationsBefore(ctx, cutoff); err != nil {
		s.Logger.Error("failed to delete resolved invitations", "error", err)
	} else {
		s.Logger.Debug("deleted resolved invitations", "cutoff", cutoff)
	}

	s.Logger.Info("housekeeping cleanup completed")
}
