package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func dateFromToday(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(domain.DateLayout)
}

func validInput() domain.CreateReservationInput {
	return domain.CreateReservationInput{
		FullName:        "  Jane Doe ",
		Email:           "jane@example.com",
		Phone:           "+1 555 0100",
		CheckInDate:     dateFromToday(10),
		CheckOutDate:    dateFromToday(14),
		RoomType:        "Twin",
		Adults:          2,
		Children:        1,
		SpecialRequests: "Late check-in",
	}
}

type reservationDeps struct {
	reservationRepo *mocks.MockReservationRepo
	adminRepo       *mocks.MockAdminRepo
	invites         *mocks.MockInviteGenerator
	notifier        *mocks.MockReservationNotifier
}

func newReservationService(t *testing.T) (*ReservationService, reservationDeps) {
	deps := reservationDeps{
		reservationRepo: mocks.NewMockReservationRepo(t),
		adminRepo:       mocks.NewMockAdminRepo(t),
		invites:         mocks.NewMockInviteGenerator(t),
		notifier:        mocks.NewMockReservationNotifier(t),
	}
	svc := NewReservationService(deps.reservationRepo, deps.adminRepo, deps.invites, deps.notifier, newTestLogger(t))
	return svc, deps
}

func TestReservationService_Create_Success(t *testing.T) {
	svc, deps := newReservationService(t)

	chatID := int64(100)
	active := &domain.Admin{ID: "a1", Status: domain.AdminStatusActive, TelegramChatID: &chatID}
	disabled := &domain.Admin{ID: "a2", Status: domain.AdminStatusDisabled}

	deps.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	deps.adminRepo.EXPECT().List(mock.Anything).Return([]*domain.Admin{active, disabled}, nil)
	deps.notifier.EXPECT().NotifyReservationCreated(mock.Anything, active, mock.Anything).Return()

	r, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Jane Doe", r.FullName)
	assert.Equal(t, domain.RoomTypeTwin, r.RoomType)
	assert.Equal(t, domain.ReservationStatusPending, r.Status)
	assert.Equal(t, "Late check-in", r.SpecialRequests)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *domain.CreateReservationInput)
	}{
		{"empty name", func(in *domain.CreateReservationInput) { in.FullName = "  " }},
		{"bad email", func(in *domain.CreateReservationInput) { in.Email = "not-an-email" }},
		{"bad check-in", func(in *domain.CreateReservationInput) { in.CheckInDate = "2025-02-30" }},
		{"bad check-out", func(in *domain.CreateReservationInput) { in.CheckOutDate = "tomorrow" }},
		{"check-in in past", func(in *domain.CreateReservationInput) { in.CheckInDate = dateFromToday(-1) }},
		{"check-out before check-in", func(in *domain.CreateReservationInput) { in.CheckOutDate = dateFromToday(5) }},
		{"unknown room", func(in *domain.CreateReservationInput) { in.RoomType = "penthouse" }},
		{"no adults", func(in *domain.CreateReservationInput) { in.Adults = 0 }},
		{"negative children", func(in *domain.CreateReservationInput) { in.Children = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newReservationService(t)

			input := validInput()
			tt.modify(&input)

			_, err := svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReservationService_Create_SameDayStay(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	deps.adminRepo.EXPECT().List(mock.Anything).Return(nil, nil)

	input := validInput()
	input.CheckInDate = dateFromToday(0)
	input.CheckOutDate = dateFromToday(0)

	r, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, r.CheckInDate, r.CheckOutDate)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Create_RepoError(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Create(context.Background(), validInput())

	require.Error(t, err)
}

func TestReservationService_Confirm_Success(t *testing.T) {
	svc, deps := newReservationService(t)

	pending := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusPending}
	confirmed := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}

	deps.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	deps.reservationRepo.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusPending, domain.ReservationStatusConfirmed).
		Return(confirmed, nil)
	deps.invites.EXPECT().GenerateFor(mock.Anything, confirmed).Return("reservation_r1_1.ics", nil)
	deps.adminRepo.EXPECT().List(mock.Anything).Return(nil, nil)

	r, err := svc.Confirm(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, r.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Confirm_InviteFailureDoesNotFail(t *testing.T) {
	svc, deps := newReservationService(t)

	pending := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusPending}
	confirmed := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}

	deps.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	deps.reservationRepo.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusPending, domain.ReservationStatusConfirmed).
		Return(confirmed, nil)
	deps.invites.EXPECT().GenerateFor(mock.Anything, confirmed).Return("", domain.ErrInviteStorage)
	deps.adminRepo.EXPECT().List(mock.Anything).Return(nil, nil)

	r, err := svc.Confirm(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, r.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Confirm_NotPending(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}, nil)

	_, err := svc.Confirm(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotPending)
}

func TestReservationService_Confirm_NotFound(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := svc.Confirm(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Confirm_LostRace(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", Status: domain.ReservationStatusPending}, nil)
	deps.reservationRepo.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusPending, domain.ReservationStatusConfirmed).
		Return(nil, domain.ErrStatusConflict)

	_, err := svc.Confirm(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStatusConflict)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, deps := newReservationService(t)

	chatID := int64(5)
	admin := &domain.Admin{ID: "a1", Status: domain.AdminStatusActive, TelegramChatID: &chatID}
	cancelled := &domain.Reservation{ID: "r1", Status: domain.ReservationStatusCancelled}

	deps.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", Status: domain.ReservationStatusConfirmed}, nil)
	deps.reservationRepo.EXPECT().
		UpdateStatus(mock.Anything, "r1", domain.ReservationStatusConfirmed, domain.ReservationStatusCancelled).
		Return(cancelled, nil)
	deps.adminRepo.EXPECT().List(mock.Anything).Return([]*domain.Admin{admin}, nil)
	deps.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, admin, cancelled).Return()

	r, err := svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, r.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservationRepo.EXPECT().GetByID(mock.Anything, "r1").
		Return(&domain.Reservation{ID: "r1", Status: domain.ReservationStatusCancelled}, nil)

	_, err := svc.Cancel(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationCancelled)
}

func TestReservationService_List_ValidatesFilter(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.List(context.Background(), domain.ReservationFilter{From: "03/10/2025"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.List(context.Background(), domain.ReservationFilter{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_List_Success(t *testing.T) {
	svc, deps := newReservationService(t)

	filter := domain.ReservationFilter{From: "2025-03-01", To: "2025-03-31", Status: domain.ReservationStatusPending}
	deps.reservationRepo.EXPECT().List(mock.Anything, filter).
		Return([]*domain.Reservation{{ID: "r1"}, {ID: "r2"}}, nil)

	result, err := svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestReservationService_CancelStale_Success(t *testing.T) {
	svc, deps := newReservationService(t)

	today := time.Now().UTC().Format(domain.DateLayout)
	chatID := int64(9)
	admin := &domain.Admin{ID: "a1", Status: domain.AdminStatusActive, TelegramChatID: &chatID}
	stale := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusCancelled},
		{ID: "r2", Status: domain.ReservationStatusCancelled},
	}

	deps.reservationRepo.EXPECT().CancelStale(mock.Anything, today).Return(stale, nil)
	deps.adminRepo.EXPECT().List(mock.Anything).Return([]*domain.Admin{admin}, nil)
	deps.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, admin, stale[0]).Return()
	deps.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, admin, stale[1]).Return()

	result, err := svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestReservationService_CancelStale_NoneStale(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservationRepo.EXPECT().CancelStale(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := svc.CancelStale(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestReservationService_CancelStale_RepoError(t *testing.T) {
	svc, deps := newReservationService(t)

	deps.reservationRepo.EXPECT().CancelStale(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.CancelStale(context.Background())

	require.Error(t, err)
}
