package sweeper

import (
	"context"
	"fmt"
	"time"

	"kisanmitra/internal/features/marketplace"
	"kisanmitra/internal/features/weatheralert"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runs every 10 minutes. Listings past their availability window and alerts
// past their end date only need coarse freshness.
const sweepSchedule = "*/10 * * * *"

// SweeperService owns the background expiry sweeps for time-bound documents.
type SweeperService interface {
	InitializeScheduler() error
	StopScheduler() error
	Sweep(ctx context.Context) error
}

type SweeperServiceImpl struct {
	listings  marketplace.ListingRepository
	alerts    weatheralert.AlertRepository
	logger    *zap.Logger
	scheduler *cron.Cron
}

func NewSweeperService(
	listings marketplace.ListingRepository,
	alerts weatheralert.AlertRepository,
	logger *zap.Logger,
) SweeperService {
	return &SweeperServiceImpl{
		listings: listings,
		alerts:   alerts,
		logger:   logger,
	}
}

func (s *SweeperServiceImpl) InitializeScheduler() error {
	s.scheduler = cron.New()

	_, err := s.scheduler.AddFunc(sweepSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := s.Sweep(ctx); err != nil {
			s.logger.Error("expiry sweep failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}

	s.scheduler.Start()
	return nil
}

func (s *SweeperServiceImpl) StopScheduler() error {
	if s.scheduler != nil {
		ctx := s.scheduler.Stop()
		<-ctx.Done()
	}
	return nil
}

// Sweep expires stale marketplace listings and deactivates lapsed weather
// alerts in one pass.
func (s *SweeperServiceImpl) Sweep(ctx context.Context) error {
	now := time.Now()

	expired, err := s.listings.ExpireBefore(ctx, now)
	if err != nil {
		return fmt.Errorf("expire listings: %w", err)
	}

	deactivated, err := s.alerts.DeactivateExpired(ctx, now)
	if err != nil {
		return fmt.Errorf("deactivate alerts: %w", err)
	}

	if expired > 0 || deactivated > 0 {
		s.logger.Info("expiry sweep completed",
			zap.Int64("listingsExpired", expired),
			zap.Int64("alertsDeactivated", deactivated),
		)
	}
	return nil
}
