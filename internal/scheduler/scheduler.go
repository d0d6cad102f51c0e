package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reservationCanceller interface {
	CancelStale(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler cancels pending reservations whose check-in day has passed.
// The first sweep runs on Start, then one per interval.
type Scheduler struct {
	reservations reservationCanceller
	interval     time.Duration
	logger       logger.Logger
}

func New(
	reservations reservationCanceller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("stale reservation sweeper started",
		logger.Duration("interval", s.interval),
	)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("stale reservation sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep returns how many reservations it cancelled.
func (s *Scheduler) sweep(ctx context.Context) int {
	cancelled, err := s.reservations.CancelStale(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("failed to cancel stale reservations",
				logger.String("error", err.Error()),
			)
		}
		return 0
	}

	for _, r := range cancelled {
		s.logger.Info("stale reservation cancelled",
			logger.String("reservation_id", r.ID),
			logger.String("guest", r.FullName),
			logger.String("check_in", r.CheckInDate),
		)
	}
	if len(cancelled) > 0 {
		s.logger.Info("stale reservation sweep finished",
			logger.Int("cancelled", len(cancelled)),
		)
	}

	return len(cancelled)
}
