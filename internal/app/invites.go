package app

import (
	"fmt"

	"github.com/stpnv0/ResortDesk/internal/calendar"
	"github.com/stpnv0/ResortDesk/internal/config"
	"github.com/stpnv0/ResortDesk/internal/repository"
	"github.com/stpnv0/ResortDesk/internal/service"
	"github.com/stpnv0/ResortDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

func calendarOptions(cfg config.CalendarConfig) calendar.Options {
	return calendar.Options{
		TitlePrefix: cfg.TitlePrefix,
		Location:    cfg.Location,
		Organizer: calendar.Organizer{
			Name:  cfg.OrganizerName,
			Email: cfg.OrganizerEmail,
		},
		UIDDomain: cfg.UIDDomain,
	}
}

func newInviteService(
	cfg *config.Config,
	reservationRepo ports.ReservationRepo,
	observer ports.InviteObserver,
	log logger.Logger,
) *service.InviteService {
	return service.NewInviteService(
		reservationRepo,
		calendar.NewBuilder(calendarOptions(cfg.Calendar)),
		calendar.NewEncoder(cfg.Calendar.ProductID),
		calendar.NewFileStore(cfg.Calendar.Dir, log),
		observer,
		log,
	)
}

// Invites is the invite pipeline without the HTTP server, for command-line use.
type Invites struct {
	*service.InviteService
	Log   logger.Logger
	close func() error
}

func OpenInvites(cfg *config.Config) (*Invites, error) {
	log, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}

	db, err := connectDB(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	svc := newInviteService(cfg, repository.NewReservationRepo(db), nil, log)

	return &Invites{InviteService: svc, Log: log, close: db.Master.Close}, nil
}

func (i *Invites) Close() error {
	return i.close()
}
