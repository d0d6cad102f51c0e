package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Summary(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewDashboardService(repo)

	arrival := &domain.Reservation{ID: "r1", CheckInDate: "2025-03-10"}
	departure := &domain.Reservation{ID: "r2", CheckOutDate: "2025-03-10"}
	upcoming := &domain.Reservation{ID: "r3", CheckInDate: "2025-03-12"}

	repo.EXPECT().CountByStatus(mock.Anything).
		Return(map[domain.ReservationStatus]int{domain.ReservationStatusPending: 3}, nil)
	repo.EXPECT().ListArrivals(mock.Anything, "2025-03-10", "2025-03-10").
		Return([]*domain.Reservation{arrival}, nil)
	repo.EXPECT().ListDepartures(mock.Anything, "2025-03-10").
		Return([]*domain.Reservation{departure}, nil)
	repo.EXPECT().ListArrivals(mock.Anything, "2025-03-11", "2025-03-17").
		Return([]*domain.Reservation{upcoming}, nil)

	summary, err := svc.Summary(context.Background(), "2025-03-10")

	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", summary.Today)
	assert.Equal(t, 3, summary.CountsByStatus[domain.ReservationStatusPending])
	assert.Equal(t, 0, summary.CountsByStatus[domain.ReservationStatusConfirmed])
	assert.Contains(t, summary.CountsByStatus, domain.ReservationStatusCancelled)
	assert.Equal(t, []*domain.Reservation{arrival}, summary.Arrivals)
	assert.Equal(t, []*domain.Reservation{departure}, summary.Departures)
	assert.Equal(t, []*domain.Reservation{upcoming}, summary.Upcoming)
}

func TestDashboardService_Summary_BadDate(t *testing.T) {
	svc := NewDashboardService(mocks.NewMockReservationRepo(t))

	_, err := svc.Summary(context.Background(), "10.03.2025")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestDashboardService_Summary_RepoError(t *testing.T) {
	repo := mocks.NewMockReservationRepo(t)
	svc := NewDashboardService(repo)

	repo.EXPECT().CountByStatus(mock.Anything).Return(nil, errors.New("db error")).Maybe()
	repo.EXPECT().ListArrivals(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	repo.EXPECT().ListDepartures(mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	_, err := svc.Summary(context.Background(), "2025-03-10")

	require.Error(t, err)
}
