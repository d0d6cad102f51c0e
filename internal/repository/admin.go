package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AdminRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdminRepo(db *dbpg.DB) *AdminRepository {
	return &AdminRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	query := `INSERT INTO admins (id, username, status, telegram_chat_id, created_at)
 			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		admin.ID, admin.Username, admin.Status, admin.TelegramChatID, admin.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("insert admin: %w", err)
	}

	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := `SELECT id, username, status, telegram_chat_id, created_at
    		  FROM admins
    		  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	var a domain.Admin
	if err = row.Scan(&a.ID, &a.Username, &a.Status, &a.TelegramChatID, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}

	return &a, nil
}

func (r *AdminRepository) List(ctx context.Context) ([]*domain.Admin, error) {
	query := `SELECT id, username, status, telegram_chat_id, created_at
			  FROM admins
			  ORDER BY username`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var res []*domain.Admin
	for rows.Next() {
		var a domain.Admin
		if err = rows.Scan(&a.ID, &a.Username, &a.Status, &a.TelegramChatID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *AdminRepository) SetStatus(ctx context.Context, id string, status domain.AdminStatus) error {
	query := `UPDATE admins SET status = $2 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("set admin status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("admin rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAdminNotFound
	}

	return nil
}
