package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/metrics"
	"github.com/stpnv0/ResortDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// InviteService runs the reservation → descriptor → iCalendar → file pipeline.
// Every failure is returned to the caller; nothing is retried.
type InviteService struct {
	reservationRepo ports.ReservationRepo
	builder         ports.InviteBuilder
	encoder         ports.InviteEncoder
	store           ports.InviteStore
	observer        ports.InviteObserver
	logger          logger.Logger
}

func NewInviteService(
	reservationRepo ports.ReservationRepo,
	builder ports.InviteBuilder,
	encoder ports.InviteEncoder,
	store ports.InviteStore,
	observer ports.InviteObserver,
	logger logger.Logger,
) *InviteService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &InviteService{
		reservationRepo: reservationRepo,
		builder:         builder,
		encoder:         encoder,
		store:           store,
		observer:        observer,
		logger:          logger,
	}
}

// Generate writes the invite for a stored reservation and returns the file name.
func (s *InviteService) Generate(ctx context.Context, reservationID string) (string, error) {
	r, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return "", fmt.Errorf("get reservation: %w", err)
	}

	return s.GenerateFor(ctx, r)
}

func (s *InviteService) GenerateFor(ctx context.Context, r *domain.Reservation) (string, error) {
	data, err := s.render(ctx, r)
	if err != nil {
		return "", err
	}

	start := time.Now()
	filename, err := s.store.Save(ctx, r.ID, data)
	s.observer.ObserveStage(metrics.StagePersist, time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("persist invite: %w", err)
	}

	s.logger.Info("calendar invite stored",
		logger.String("reservation_id", r.ID),
		logger.String("filename", filename),
		logger.Int("bytes", len(data)),
	)

	return filename, nil
}

// Render returns the iCalendar text without persisting it.
func (s *InviteService) Render(ctx context.Context, reservationID string) ([]byte, error) {
	r, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return s.render(ctx, r)
}

func (s *InviteService) Open(name string) ([]byte, error) {
	return s.store.Open(name)
}

func (s *InviteService) render(ctx context.Context, r *domain.Reservation) ([]byte, error) {
	if r.Status == domain.ReservationStatusCancelled {
		return nil, domain.ErrReservationCancelled
	}

	start := time.Now()
	ev, err := s.builder.Build(r)
	s.observer.ObserveStage(metrics.StageBuild, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("build invite: %w", err)
	}

	start = time.Now()
	data, err := s.encoder.Encode(ctx, ev)
	s.observer.ObserveStage(metrics.StageEncode, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("encode invite: %w", err)
	}

	return data, nil
}

type nopObserver struct{}

func (nopObserver) ObserveStage(string, time.Duration, error) {}
