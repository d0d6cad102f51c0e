package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	settingsCacheKey = "site"

	defaultSettingsCacheSize = 4
	defaultSettingsCacheTTL  = time.Minute
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// SettingsService serves site settings to the public pages. Reads go through
// a small TTL cache; updates replace the cached value. The cache holds its own
// copy, so callers may modify what they get back.
type SettingsService struct {
	repo   ports.SettingsRepo
	cache  *expirable.LRU[string, *domain.SiteSettings]
	logger logger.Logger
}

func NewSettingsService(repo ports.SettingsRepo, cacheSize int, cacheTTL time.Duration, logger logger.Logger) *SettingsService {
	if cacheSize <= 0 {
		cacheSize = defaultSettingsCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultSettingsCacheTTL
	}
	return &SettingsService{
		repo:   repo,
		cache:  expirable.NewLRU[string, *domain.SiteSettings](cacheSize, nil, cacheTTL),
		logger: logger,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.SiteSettings, error) {
	if cached, ok := s.cache.Get(settingsCacheKey); ok {
		return cloneSettings(cached), nil
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Add(settingsCacheKey, cloneSettings(settings))

	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, settings *domain.SiteSettings) (*domain.SiteSettings, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}

	settings.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, settings); err != nil {
		s.cache.Remove(settingsCacheKey)
		return nil, fmt.Errorf("save settings: %w", err)
	}
	s.cache.Add(settingsCacheKey, cloneSettings(settings))

	s.logger.Info("site settings updated",
		logger.String("resort_name", settings.ResortName),
	)

	return settings, nil
}

// Seed stores seed only when no settings exist yet.
func (s *SettingsService) Seed(ctx context.Context, seed *domain.SiteSettings) error {
	if seed == nil {
		return nil
	}

	_, err := s.repo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrSettingsNotFound) {
		return fmt.Errorf("check settings: %w", err)
	}

	if err = validateSettings(seed); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	seed.UpdatedAt = time.Now().UTC()
	if err = s.repo.Save(ctx, seed); err != nil {
		return fmt.Errorf("save seed: %w", err)
	}

	s.logger.Info("site settings seeded",
		logger.String("resort_name", seed.ResortName),
	)

	return nil
}

func cloneSettings(s *domain.SiteSettings) *domain.SiteSettings {
	c := *s
	c.OpeningHours = append([]domain.OpeningHours(nil), s.OpeningHours...)
	c.Prices = append([]domain.PriceItem(nil), s.Prices...)
	return &c
}

func validateSettings(s *domain.SiteSettings) error {
	if s == nil || strings.TrimSpace(s.ResortName) == "" {
		return fmt.Errorf("%w: resort_name is required", domain.ErrValidation)
	}
	if s.Email != "" {
		if _, err := mail.ParseAddress(s.Email); err != nil {
			return fmt.Errorf("%w: email is invalid", domain.ErrValidation)
		}
	}

	seen := make(map[string]bool, len(s.OpeningHours))
	for _, h := range s.OpeningHours {
		day := strings.ToLower(h.Day)
		if !weekdays[day] {
			return fmt.Errorf("%w: unknown day %q", domain.ErrValidation, h.Day)
		}
		if seen[day] {
			return fmt.Errorf("%w: duplicate opening hours for %s", domain.ErrValidation, day)
		}
		seen[day] = true
		if h.Closed {
			continue
		}

		opens, err := time.Parse("15:04", h.Opens)
		if err != nil {
			return fmt.Errorf("%w: %s opens: bad time %q", domain.ErrValidation, day, h.Opens)
		}
		closes, err := time.Parse("15:04", h.Closes)
		if err != nil {
			return fmt.Errorf("%w: %s closes: bad time %q", domain.ErrValidation, day, h.Closes)
		}
		if !closes.After(opens) {
			return fmt.Errorf("%w: %s closes before it opens", domain.ErrValidation, day)
		}
	}

	for _, p := range s.Prices {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("%w: price name is required", domain.ErrValidation)
		}
		if p.Amount < 0 {
			return fmt.Errorf("%w: price %q is negative", domain.ErrValidation, p.Name)
		}
		if len(p.Currency) != 3 {
			return fmt.Errorf("%w: price %q has bad currency %q", domain.ErrValidation, p.Name, p.Currency)
		}
	}

	return nil
}
