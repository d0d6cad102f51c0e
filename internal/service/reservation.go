package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	adminRepo       ports.AdminRepo
	invites         ports.InviteGenerator
	notifier        ports.ReservationNotifier
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	adminRepo ports.AdminRepo,
	invites ports.InviteGenerator,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		adminRepo:       adminRepo,
		invites:         invites,
		notifier:        notifier,
		logger:          logger,
	}
}

func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	roomType, err := validateReservationInput(input, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r := &domain.Reservation{
		ID:              uuid.New().String(),
		FullName:        strings.TrimSpace(input.FullName),
		Email:           strings.TrimSpace(input.Email),
		Phone:           strings.TrimSpace(input.Phone),
		CheckInDate:     input.CheckInDate,
		CheckOutDate:    input.CheckOutDate,
		RoomType:        roomType,
		Adults:          input.Adults,
		Children:        input.Children,
		SpecialRequests: strings.TrimSpace(input.SpecialRequests),
		Status:          domain.ReservationStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.reservationRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", r.ID),
		logger.String("room_type", string(r.RoomType)),
		logger.String("check_in", r.CheckInDate),
		logger.String("check_out", r.CheckOutDate),
	)

	go s.notifyAdmins(context.WithoutCancel(ctx), []*domain.Reservation{r}, s.notifier.NotifyReservationCreated)

	return r, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	for _, d := range []string{filter.From, filter.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, d); err != nil {
			return nil, fmt.Errorf("%w: %w: %q", domain.ErrValidation, domain.ErrInvalidDate, d)
		}
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}

	return s.reservationRepo.List(ctx, filter)
}

func (s *ReservationService) Confirm(ctx context.Context, id string) (*domain.Reservation, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if r.Status != domain.ReservationStatusPending {
		return nil, domain.ErrReservationNotPending
	}

	confirmed, err := s.reservationRepo.UpdateStatus(ctx, id, domain.ReservationStatusPending, domain.ReservationStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("confirm reservation: %w", err)
	}

	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", id),
	)

	// Приглашение в календарь не влияет на подтверждение брони.
	if s.invites != nil {
		filename, err := s.invites.GenerateFor(ctx, confirmed)
		if err != nil {
			s.logger.Warn("calendar invite not generated",
				logger.String("reservation_id", id),
				logger.String("error", err.Error()),
			)
		} else {
			s.logger.Info("calendar invite generated",
				logger.String("reservation_id", id),
				logger.String("filename", filename),
			)
		}
	}

	go s.notifyAdmins(context.WithoutCancel(ctx), []*domain.Reservation{confirmed}, s.notifier.NotifyReservationConfirmed)

	return confirmed, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if r.Status == domain.ReservationStatusCancelled {
		return nil, domain.ErrReservationCancelled
	}

	cancelled, err := s.reservationRepo.UpdateStatus(ctx, id, r.Status, domain.ReservationStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", id),
		logger.String("previous_status", string(r.Status)),
	)

	go s.notifyAdmins(context.WithoutCancel(ctx), []*domain.Reservation{cancelled}, s.notifier.NotifyReservationCancelled)

	return cancelled, nil
}

// CancelStale cancels pending reservations whose check-in date has already passed.
func (s *ReservationService) CancelStale(ctx context.Context) ([]*domain.Reservation, error) {
	today := time.Now().UTC().Format(domain.DateLayout)

	cancelled, err := s.reservationRepo.CancelStale(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale reservations cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyAdmins(context.WithoutCancel(ctx), cancelled, s.notifier.NotifyReservationCancelled)
	}

	return cancelled, nil
}

type notifyFunc func(ctx context.Context, admin *domain.Admin, r *domain.Reservation)

func (s *ReservationService) notifyAdmins(ctx context.Context, reservations []*domain.Reservation, notify notifyFunc) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list admins for notification",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range reservations {
		for _, a := range admins {
			if a.Status != domain.AdminStatusActive {
				continue
			}
			notify(ctx, a, r)
		}
	}
}

func validateReservationInput(input domain.CreateReservationInput, now time.Time) (domain.RoomType, error) {
	if strings.TrimSpace(input.FullName) == "" {
		return "", fmt.Errorf("%w: full_name is required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		return "", fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	}

	checkIn, err := time.Parse(domain.DateLayout, input.CheckInDate)
	if err != nil {
		return "", fmt.Errorf("%w: check_in_date: %w", domain.ErrValidation, domain.ErrInvalidDate)
	}
	checkOut, err := time.Parse(domain.DateLayout, input.CheckOutDate)
	if err != nil {
		return "", fmt.Errorf("%w: check_out_date: %w", domain.ErrValidation, domain.ErrInvalidDate)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return "", fmt.Errorf("%w: check_in_date must not be in the past", domain.ErrValidation)
	}
	if checkOut.Before(checkIn) {
		return "", fmt.Errorf("%w: check_out_date must be on or after check_in_date", domain.ErrValidation)
	}

	roomType, ok := domain.ParseRoomType(input.RoomType)
	if !ok {
		return "", fmt.Errorf("%w: unknown room_type %q", domain.ErrValidation, input.RoomType)
	}
	if input.Adults < 1 {
		return "", fmt.Errorf("%w: at least one adult is required", domain.ErrValidation)
	}
	if input.Children < 0 {
		return "", fmt.Errorf("%w: children must not be negative", domain.ErrValidation)
	}

	return roomType, nil
}
