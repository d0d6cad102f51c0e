package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stpnv0/ResortDesk/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Create_Success(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)

	chatID := int64(123456)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Admin")).Return(nil)

	admin, err := svc.Create(context.Background(), domain.CreateAdminInput{
		Username:       " frontdesk ",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.Equal(t, "frontdesk", admin.Username)
	assert.Equal(t, domain.AdminStatusActive, admin.Status)
	assert.Equal(t, &chatID, admin.TelegramChatID)
	assert.NotEmpty(t, admin.ID)
}

func TestAdminService_Create_EmptyUsername(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)

	_, err := svc.Create(context.Background(), domain.CreateAdminInput{Username: ""})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateAdminInput{Username: "frontdesk"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAdminService_SetStatus(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)

	repo.EXPECT().SetStatus(mock.Anything, "a1", domain.AdminStatusDisabled).Return(nil)
	require.NoError(t, svc.SetStatus(context.Background(), "a1", domain.AdminStatusDisabled))

	err := svc.SetStatus(context.Background(), "a1", domain.AdminStatus("root"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_SetStatus_NotFound(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)

	repo.EXPECT().SetStatus(mock.Anything, "missing", domain.AdminStatusActive).Return(domain.ErrAdminNotFound)

	err := svc.SetStatus(context.Background(), "missing", domain.AdminStatusActive)

	assert.ErrorIs(t, err, domain.ErrAdminNotFound)
}

func TestAdminService_Authorize(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name    string
		id      string
		setup   func(repo *mocks.MockAdminRepo)
		wantErr error
	}{
		{
			name: "active admin",
			id:   id,
			setup: func(repo *mocks.MockAdminRepo) {
				repo.EXPECT().GetByID(mock.Anything, id).
					Return(&domain.Admin{ID: id, Status: domain.AdminStatusActive}, nil)
			},
		},
		{
			name:    "malformed id",
			id:      "not-a-uuid",
			setup:   func(repo *mocks.MockAdminRepo) {},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name: "unknown admin",
			id:   id,
			setup: func(repo *mocks.MockAdminRepo) {
				repo.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrAdminNotFound)
			},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name: "disabled admin",
			id:   id,
			setup: func(repo *mocks.MockAdminRepo) {
				repo.EXPECT().GetByID(mock.Anything, id).
					Return(&domain.Admin{ID: id, Status: domain.AdminStatusDisabled}, nil)
			},
			wantErr: domain.ErrAdminDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockAdminRepo(t)
			tt.setup(repo)
			svc := NewAdminService(repo)

			admin, err := svc.Authorize(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, admin)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, admin.ID)
		})
	}
}

func TestAdminService_Authorize_RepoError(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)
	id := uuid.New().String()

	repo.EXPECT().GetByID(mock.Anything, id).Return(nil, errors.New("db error"))

	_, err := svc.Authorize(context.Background(), id)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAdminService_Bootstrap_CreatesFirstAdmin(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)

	var created *domain.Admin
	repo.EXPECT().List(mock.Anything).Return(nil, nil)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Admin")).
		Run(func(_ context.Context, a *domain.Admin) { created = a }).
		Return(nil)

	admin, err := svc.Bootstrap(context.Background(), domain.CreateAdminInput{Username: "owner"})

	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Same(t, created, admin)
	assert.Equal(t, "owner", admin.Username)
	assert.Equal(t, domain.AdminStatusActive, admin.Status)

	// The new admin passes the same check the admin routes use.
	repo.EXPECT().GetByID(mock.Anything, admin.ID).Return(created, nil)
	authorized, err := svc.Authorize(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, authorized.ID)
}

func TestAdminService_Bootstrap_SkipsWhenAdminsExist(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Admin{{ID: uuid.New().String(), Username: "frontdesk"}}, nil)

	admin, err := svc.Bootstrap(context.Background(), domain.CreateAdminInput{Username: "owner"})

	require.NoError(t, err)
	assert.Nil(t, admin)
}

func TestAdminService_Bootstrap_NoUsername(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)

	admin, err := svc.Bootstrap(context.Background(), domain.CreateAdminInput{Username: "  "})

	require.NoError(t, err)
	assert.Nil(t, admin)
}

func TestAdminService_Bootstrap_ListError(t *testing.T) {
	repo := mocks.NewMockAdminRepo(t)
	svc := NewAdminService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Bootstrap(context.Background(), domain.CreateAdminInput{Username: "owner"})

	require.Error(t, err)
}
