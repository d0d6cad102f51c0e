package ports

import (
	"context"

	"github.com/stpnv0/ResortDesk/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, admin *domain.Admin, r *domain.Reservation)
	NotifyReservationConfirmed(ctx context.Context, admin *domain.Admin, r *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, admin *domain.Admin, r *domain.Reservation)
}
