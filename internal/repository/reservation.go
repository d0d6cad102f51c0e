package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Даты отдаём строками YYYY-MM-DD, без времени и зоны.
const reservationColumns = `id, full_name, email, phone,
		to_char(check_in_date, 'YYYY-MM-DD'), to_char(check_out_date, 'YYYY-MM-DD'),
		room_type, adults, children, special_requests, status, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var r domain.Reservation
	err := row.Scan(
		&r.ID, &r.FullName, &r.Email, &r.Phone,
		&r.CheckInDate, &r.CheckOutDate,
		&r.RoomType, &r.Adults, &r.Children, &r.SpecialRequests,
		&r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, r)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (id, full_name, email, phone, check_in_date, check_out_date,
			  room_type, adults, children, special_requests, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5::date, $6::date, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.FullName, res.Email, res.Phone, res.CheckInDate, res.CheckOutDate,
		res.RoomType, res.Adults, res.Children, res.SpecialRequests,
		res.Status, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Constraint)
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	// Пересечение периода проживания с [From, To].
	if filter.From != "" {
		conds = append(conds, "check_out_date >= "+arg(filter.From)+"::date")
	}
	if filter.To != "" {
		conds = append(conds, "check_in_date <= "+arg(filter.To)+"::date")
	}
	if filter.Status != "" {
		conds = append(conds, "status = "+arg(filter.Status))
	}

	query := `SELECT ` + reservationColumns + ` FROM reservations`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY check_in_date, created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return scanReservations(rows)
}

func (r *ReservationRepository) UpdateStatus(
	ctx context.Context, id string, from, to domain.ReservationStatus,
) (*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2
			  RETURNING ` + reservationColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStatusConflict
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) CancelStale(ctx context.Context, today string) ([]*domain.Reservation, error) {
	query := `
        UPDATE reservations
        SET status = $2, updated_at = now()
        WHERE status = $1
          AND check_in_date < $3::date
        RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.ReservationStatusPending, domain.ReservationStatusCancelled, today,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	return scanReservations(rows)
}

func (r *ReservationRepository) CountByStatus(ctx context.Context) (map[domain.ReservationStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM reservations GROUP BY status`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}
	defer rows.Close()

	res := make(map[domain.ReservationStatus]int, 3)
	for rows.Next() {
		var (
			status domain.ReservationStatus
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		res[status] = count
	}

	return res, rows.Err()
}

func (r *ReservationRepository) ListArrivals(ctx context.Context, from, to string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE check_in_date BETWEEN $1::date AND $2::date
			    AND status = ANY($3)
			  ORDER BY check_in_date, full_name`

	statuses := make([]string, 0, len(domain.ActiveStatuses))
	for _, st := range domain.ActiveStatuses {
		statuses = append(statuses, string(st))
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to, pq.Array(statuses))
	if err != nil {
		return nil, fmt.Errorf("list arrivals: %w", err)
	}

	return scanReservations(rows)
}

func (r *ReservationRepository) ListDepartures(ctx context.Context, date string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE check_out_date = $1::date
			    AND status = $2
			  ORDER BY full_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date, domain.ReservationStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("list departures: %w", err)
	}

	return scanReservations(rows)
}
