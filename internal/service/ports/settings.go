package ports

import (
	"context"

	"github.com/stpnv0/ResortDesk/internal/domain"
)

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Save(ctx context.Context, s *domain.SiteSettings) error
}
