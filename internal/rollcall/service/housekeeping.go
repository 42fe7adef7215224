package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/rollcall/pkg/bearer"
)

// HousekeepingService periodically drops expired bearer credentials and
// stale OTP requests. Session tokens and attendance are history and are
// never cleaned.
type HousekeepingService struct {
	Bearers  bearer.Store
	Auth     *AuthService
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(
	bearers bearer.Store,
	auth *AuthService,
	logger *slog.Logger,
	interval time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Bearers:  bearers,
		Auth:     auth,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop() to shut it down.
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

	s.Cleanup(context.Background(), time.Now())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background(), time.Now())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup runs one sweep. Each step is independent: a failure in one does
// not stop the others.
func (s *HousekeepingService) Cleanup(ctx context.Context, now time.Time) {
	s.Logger.Debug("starting housekeeping cleanup")

	evicted, err := s.Bearers.EvictExpired(ctx, now)
	if err != nil {
		s.Logger.Error("failed to evict expired bearer tokens", "error", err)
	}

	var otps int
	if s.Auth != nil {
		otps = s.Auth.EvictExpiredOTPRequests(now)
	}

	s.Logger.Info("housekeeping cleanup completed",
		"evicted_bearers", evicted, "evicted_otp_requests", otps)
}
