package ports

import (
	"context"

	"github.com/stpnv0/ResortDesk/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus) (*domain.Reservation, error)
	CancelStale(ctx context.Context, today string) ([]*domain.Reservation, error)
	CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int, error)
	ListArrivals(ctx context.Context, from, to string) ([]*domain.Reservation, error)
	ListDepartures(ctx context.Context, date string) ([]*domain.Reservation, error)
}
