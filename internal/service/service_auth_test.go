package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aminurdev/cms-auth/internal/config"
	"github.com/aminurdev/cms-auth/internal/logger"
	"github.com/aminurdev/cms-auth/internal/mock"
	"github.com/aminurdev/cms-auth/internal/store"
	"github.com/aminurdev/cms-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockRoleRepository) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockRoles := mock.NewMockRoleRepository(ctrl)

	cfg := config.App{DefaultRoleID: 2, BcryptCost: bcrypt.MinCost}
	svc := NewAuthService(mockUsers, mockRoles, cfg, logger.Nop())

	return svc, mockUsers, mockRoles
}

func bcryptHash(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestAuthService_VerifyCredentials_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: bcryptHash(t, "correct horse"),
		Role:         &models.Role{ID: 1, NameEn: "Admin"},
	}

	mockUsers.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(stored, nil)

	user, err := svc.VerifyCredentials(ctx, "admin@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	assert.Equal(t, stored.Email, user.Email)
}

func TestAuthService_VerifyCredentials_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.VerifyCredentials(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_VerifyCredentials_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: bcryptHash(t, "correct horse"),
	}

	mockUsers.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(stored, nil)

	_, err := svc.VerifyCredentials(ctx, "admin@example.com", "battery staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_VerifyCredentials_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.VerifyCredentials(ctx, "", "password")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.VerifyCredentials(ctx, "admin@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_VerifyCredentials_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	storageErr := errors.New("connection refused")
	mockUsers.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(models.User{}, storageErr)

	_, err := svc.VerifyCredentials(ctx, "admin@example.com", "password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, storageErr)
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockRoles := newTestAuthService(t, ctrl)
	ctx := context.Background()

	defaultRole := models.Role{ID: 2, NameEn: "Editor"}
	mockRoles.EXPECT().FindRoleByID(ctx, int64(2)).Return(defaultRole, nil)

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "new@example.com", user.Email)
			require.NotNil(t, user.Role)
			assert.Equal(t, int64(2), user.Role.ID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))

			user.ID = 10
			return user, nil
		})

	registered, err := svc.RegisterUser(ctx, models.RegisterRequest{
		NameEn:   "New User",
		Email:    "new@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), registered.ID)
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockRoles := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockRoles.EXPECT().FindRoleByID(ctx, int64(2)).Return(models.Role{ID: 2}, nil)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Email:    "taken@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_FindUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.FindUser(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_RegisterUser_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{Email: "", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}
