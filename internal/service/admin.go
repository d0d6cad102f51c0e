package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/service/ports"
)

type AdminService struct {
	repo ports.AdminRepo
}

func NewAdminService(repo ports.AdminRepo) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) Create(ctx context.Context, input domain.CreateAdminInput) (*domain.Admin, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	admin := &domain.Admin{
		ID:             uuid.New().String(),
		Username:       username,
		Status:         domain.AdminStatusActive,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return admin, nil
}

// Bootstrap creates the first admin when the admins table is empty.
// It returns nil when input has no username or admins already exist.
func (s *AdminService) Bootstrap(ctx context.Context, input domain.CreateAdminInput) (*domain.Admin, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, nil
	}

	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	if len(admins) > 0 {
		return nil, nil
	}

	return s.Create(ctx, input)
}

func (s *AdminService) List(ctx context.Context) ([]*domain.Admin, error) {
	return s.repo.List(ctx)
}

func (s *AdminService) SetStatus(ctx context.Context, id string, status domain.AdminStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown admin status %q", domain.ErrValidation, status)
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set admin status: %w", err)
	}

	return nil
}

// Authorize is the whole admin check: the admin must exist and be active.
func (s *AdminService) Authorize(ctx context.Context, id string) (*domain.Admin, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUnauthorized
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	if admin.Status != domain.AdminStatusActive {
		return nil, domain.ErrAdminDisabled
	}

	return admin, nil
}
