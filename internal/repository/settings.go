package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// Настройки сайта хранятся одной строкой (id = 1) в JSONB.
const settingsRowID = 1

type SettingsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSettingsRepo(db *dbpg.DB) *SettingsRepository {
	return &SettingsRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	query := `SELECT data, updated_at FROM site_settings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, settingsRowID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	var (
		raw []byte
		s   domain.SiteSettings
	)
	if err = row.Scan(&raw, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("scan settings: %w", err)
	}

	updatedAt := s.UpdatedAt
	if err = json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	s.UpdatedAt = updatedAt

	return &s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *domain.SiteSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	query := `INSERT INTO site_settings (id, data, updated_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (id) DO UPDATE
			  SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	if _, err = r.db.ExecWithRetry(ctx, r.strategy, query, settingsRowID, raw, s.UpdatedAt); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}
