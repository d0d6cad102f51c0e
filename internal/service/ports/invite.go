package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ResortDesk/internal/calendar"
	"github.com/stpnv0/ResortDesk/internal/domain"
)

type InviteBuilder interface {
	Build(r *domain.Reservation) (*calendar.Event, error)
}

type InviteEncoder interface {
	Encode(ctx context.Context, ev *calendar.Event) ([]byte, error)
}

type InviteStore interface {
	Save(ctx context.Context, reservationID string, data []byte) (string, error)
	Open(name string) ([]byte, error)
}

type InviteObserver interface {
	ObserveStage(stage string, d time.Duration, err error)
}

// InviteGenerator is the side of the invite pipeline the reservation flow uses.
type InviteGenerator interface {
	GenerateFor(ctx context.Context, r *domain.Reservation) (string, error)
}
