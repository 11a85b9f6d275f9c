package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/aaronparryphoto/til-demo/internal/error_values"
	"github.com/aaronparryphoto/til-demo/internal/repository/mocks"
	"github.com/aaronparryphoto/til-demo/internal/service"
	"github.com/aaronparryphoto/til-demo/pkg/entity"
)

func TestRegister(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uid := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		usersRepo.EXPECT().FindByName(gomock.Any(), "test_user").Return(&entity.User{
			ID:   uid,
			Name: "test_user",
		}, nil)

		user, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     "test_user",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, uid, user.ID)
	})

	t.Run("user exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)

		_, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     "test_user",
			Password: "password123",
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})

	t.Run("validation error on short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		serv := service.NewUserService(mocks.NewMockUsersRepositoryI(ctrl))
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     "test_user",
			Password: "short",
		})
		assert.Error(t, err)
	})

	t.Run("validation error on name starting with digit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		serv := service.NewUserService(mocks.NewMockUsersRepositoryI(ctrl))
		_, err := serv.Register(ctx, &service.RegisterRequest{
			Name:     "1user",
			Password: "password123",
		})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uid := uuid.New()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().FindByName(gomock.Any(), "test_user").Return(&entity.User{
			ID:           uid,
			Name:         "test_user",
			PasswordHash: string(passwordHash),
		}, nil)

		user, err := serv.Login(ctx, "test_user", "password123")
		require.NoError(t, err)
		assert.Equal(t, uid, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().FindByName(gomock.Any(), "test_user").Return(&entity.User{
			ID:           uid,
			Name:         "test_user",
			PasswordHash: string(passwordHash),
		}, nil)

		_, err := serv.Login(ctx, "test_user", "wrong_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().FindByName(gomock.Any(), "ghost").Return(nil, errorvalues.ErrUserNotFound)

		_, err := serv.Login(ctx, "ghost", "password123")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uid := uuid.New()

	t.Run("renamed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{
			ID:   uid,
			Name: "old_name",
		}, nil)
		usersRepo.EXPECT().Update(gomock.Any(), &entity.User{
			ID:   uid,
			Name: "new_name",
		}).Return(nil)

		user, err := serv.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{Name: "new_name"})
		require.NoError(t, err)
		assert.Equal(t, "new_name", user.Name)
	})

	t.Run("name taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid, Name: "old_name"}, nil)
		usersRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)

		_, err := serv.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{Name: "taken_name"})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)

		_, err := serv.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{Name: "new_name"})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})

	t.Run("validation error on bad name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		serv := service.NewUserService(mocks.NewMockUsersRepositoryI(ctrl))
		_, err := serv.UpdateProfile(ctx, uid, &service.UpdateProfileRequest{Name: "1bad name"})
		assert.Error(t, err)
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	uid := uuid.New()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{
			ID:           uid,
			Name:         "test_user",
			PasswordHash: string(passwordHash),
		}, nil)
		usersRepo.EXPECT().Delete(gomock.Any(), uid).Return(nil)

		assert.NoError(t, serv.DeleteAccount(ctx, uid, "password123"))
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
		serv := service.NewUserService(usersRepo)
		usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{
			ID:           uid,
			Name:         "test_user",
			PasswordHash: string(passwordHash),
		}, nil)

		err := serv.DeleteAccount(ctx, uid, "nope_nope")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
}
