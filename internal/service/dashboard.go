package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/service/ports"
	"golang.org/x/sync/errgroup"
)

const upcomingDays = 7

type DashboardService struct {
	repo ports.ReservationRepo
}

func NewDashboardService(repo ports.ReservationRepo) *DashboardService {
	return &DashboardService{repo: repo}
}

// Summary collects the front-desk view for a day; an empty date means today (UTC).
func (s *DashboardService) Summary(ctx context.Context, date string) (*domain.DashboardSummary, error) {
	day := time.Now().UTC()
	if date != "" {
		var err error
		if day, err = time.Parse(domain.DateLayout, date); err != nil {
			return nil, fmt.Errorf("%w: %w: %q", domain.ErrValidation, domain.ErrInvalidDate, date)
		}
	}
	today := day.Format(domain.DateLayout)
	from := day.AddDate(0, 0, 1).Format(domain.DateLayout)
	to := day.AddDate(0, 0, upcomingDays).Format(domain.DateLayout)

	summary := &domain.DashboardSummary{Today: today}

	// Каждая горутина пишет только своё поле.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		counts, err := s.repo.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("count by status: %w", err)
		}
		summary.CountsByStatus = counts
		return nil
	})
	g.Go(func() error {
		arrivals, err := s.repo.ListArrivals(gctx, today, today)
		if err != nil {
			return fmt.Errorf("arrivals: %w", err)
		}
		summary.Arrivals = arrivals
		return nil
	})
	g.Go(func() error {
		departures, err := s.repo.ListDepartures(gctx, today)
		if err != nil {
			return fmt.Errorf("departures: %w", err)
		}
		summary.Departures = departures
		return nil
	})
	g.Go(func() error {
		upcoming, err := s.repo.ListArrivals(gctx, from, to)
		if err != nil {
			return fmt.Errorf("upcoming: %w", err)
		}
		summary.Upcoming = upcoming
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	if summary.CountsByStatus == nil {
		summary.CountsByStatus = make(map[domain.ReservationStatus]int, 3)
	}
	for _, st := range []domain.ReservationStatus{
		domain.ReservationStatusPending,
		domain.ReservationStatusConfirmed,
		domain.ReservationStatusCancelled,
	} {
		if _, ok := summary.CountsByStatus[st]; !ok {
			summary.CountsByStatus[st] = 0
		}
	}

	return summary, nil
}
