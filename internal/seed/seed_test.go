package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinayk/rollcall/internal/app/models"
	"github.com/vinayk/rollcall/internal/app/models/dto"
	"github.com/vinayk/rollcall/internal/config"
)

type fakeCounter struct {
	count int64
	err   error
}

func (c *fakeCounter) CountUsers(context.Context) (int64, error) {
	return c.count, c.err
}

type fakeAuthService struct {
	created  *models.User
	password string
	err      error
}

func (s *fakeAuthService) CreateSuperuser(_ context.Context, user *models.User, password string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = user
	s.password = password
	created := *user
	created.ID = 1
	return &created, nil
}

func (s *fakeAuthService) Register(context.Context, *dto.RegisterRequest) (*models.User, error) {
	return nil, nil
}

func (s *fakeAuthService) Login(context.Context, *dto.LoginRequest) (*dto.TokenResponse, error) {
	return nil, nil
}

func (s *fakeAuthService) Refresh(context.Context, string) (*dto.TokenResponse, error) {
	return nil, nil
}

func (s *fakeAuthService) ListUsers(context.Context) ([]*models.User, error) {
	return nil, nil
}

func bootstrapConfig() *config.BootstrapConfig {
	return &config.BootstrapConfig{
		AdminEmail:    "admin@gmail.com",
		AdminUsername: "admin",
		AdminPassword: "Abcd@1234",
	}
}

func TestEnsureFirstUser_emptyTable(t *testing.T) {
	svc := &fakeAuthService{}

	err := EnsureFirstUser(context.Background(), &fakeCounter{count: 0}, svc, bootstrapConfig())
	require.NoError(t, err)

	require.NotNil(t, svc.created)
	assert.Equal(t, "admin@gmail.com", svc.created.Email)
	require.NotNil(t, svc.created.Username)
	assert.Equal(t, "admin", *svc.created.Username)
	assert.Equal(t, models.UserTypeAdmin, svc.created.Type)
	assert.True(t, svc.created.IsStaff)
	assert.True(t, svc.created.IsSuperuser)
	assert.True(t, svc.created.IsActive)
	assert.Equal(t, "Abcd@1234", svc.password)
}

func TestEnsureFirstUser_usersExist(t *testing.T) {
	svc := &fakeAuthService{}

	err := EnsureFirstUser(context.Background(), &fakeCounter{count: 3}, svc, bootstrapConfig())
	require.NoError(t, err)
	assert.Nil(t, svc.created)
}

func TestEnsureFirstUser_errors(t *testing.T) {
	countErr := errors.New("connection refused")
	err := EnsureFirstUser(context.Background(), &fakeCounter{err: countErr}, &fakeAuthService{}, bootstrapConfig())
	assert.ErrorIs(t, err, countErr)

	createErr := errors.New("insert failed")
	err = EnsureFirstUser(context.Background(), &fakeCounter{count: 0}, &fakeAuthService{err: createErr}, bootstrapConfig())
	assert.ErrorIs(t, err, createErr)
}
