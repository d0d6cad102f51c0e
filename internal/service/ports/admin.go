package ports

import (
	"context"

	"github.com/stpnv0/ResortDesk/internal/domain"
)

type AdminRepo interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	List(ctx context.Context) ([]*domain.Admin, error)
	SetStatus(ctx context.Context, id string, status domain.AdminStatus) error
}
