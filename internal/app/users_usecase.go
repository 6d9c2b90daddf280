package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"myflix/internal/domain/entities"
	"myflix/internal/ports/api"
	"myflix/internal/ports/repositories"
	svc "myflix/internal/ports/services"
	"myflix/pkg/logger"
)

const (
	methodGetProfile    = "Users.GetProfile"
	methodUpdateProfile = "Users.UpdateProfile"
	methodDeleteAccount = "Users.DeleteAccount"

	msgGettingProfile  = "getting user profile"
	msgUpdatingProfile = "updating user profile"
	msgDeletingAccount = "deleting user account"
	msgProfileUpdated  = "user profile updated"
	msgAccountDeleted  = "user account deleted"

	msgErrGetProfile    = "failed to get user profile"
	msgErrUpdateProfile = "failed to update user profile"
	msgErrDeleteAccount = "failed to delete user account"

	errCtxGettingProfile  = "getting profile"
	errCtxUpdatingProfile = "updating profile"
	errCtxDeletingAccount = "deleting account"
)

// UserUseCaseImpl реализует интерфейс api.UserUseCase.
type UserUseCaseImpl struct {
	userRepo     repositories.UserRepository
	favoriteRepo repositories.FavoriteRepository
	passwordSvc  svc.PasswordService
}

// NewUserUseCase создает новый экземпляр сценария работы с профилем.
func NewUserUseCase(
	userRepo repositories.UserRepository,
	favoriteRepo repositories.FavoriteRepository,
	passwordSvc svc.PasswordService,
) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
		passwordSvc:  passwordSvc,
	}
}

// GetProfile возвращает профиль пользователя вместе с избранным.
func (u *UserUseCaseImpl) GetProfile(ctx context.Context, username string) (*api.Profile, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetProfile), zap.String("username", username))
	log.Debug(ctx, msgGettingProfile)

	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrGetProfile, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxGettingProfile, err)
	}

	favorites, err := u.favoriteRepo.List(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrGetProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxGettingProfile, err)
	}

	return &api.Profile{
		User:      user,
		Favorites: favorites,
	}, nil
}

// UpdateProfile обновляет изменяемые поля профиля.
// Пустые поля не изменяются; новый пароль хэшируется перед записью.
func (u *UserUseCaseImpl) UpdateProfile(ctx context.Context, username string, update *api.ProfileUpdate) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateProfile), zap.String("username", username))
	log.Debug(ctx, msgUpdatingProfile)

	user, err := u.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrUpdateProfile, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProfile, err)
	}

	if update.Email != "" {
		if err := validateEmail(update.Email); err != nil {
			log.Debug(ctx, msgInvalidEmailFormat, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxValidatingEmail, err)
		}
		user.Email = update.Email
	}

	if update.Password != "" {
		if err := validatePassword(update.Password); err != nil {
			log.Debug(ctx, msgInvalidPassword, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxValidatingPassword, err)
		}
		hashedPassword, err := u.passwordSvc.Hash(ctx, update.Password)
		if err != nil {
			log.Error(ctx, msgErrHashPassword, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
		}
		user.PasswordHash = hashedPassword
	}

	if update.Birthday != nil {
		user.Birthday = update.Birthday
	}

	updatedUser, err := u.userRepo.Update(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrUpdateProfile, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingProfile, err)
	}

	log.Info(ctx, msgProfileUpdated, zap.String("userID", updatedUser.ID))
	return updatedUser, nil
}

// DeleteAccount удаляет учетную запись пользователя.
// Избранное принадлежит пользователю и удаляется вместе с ним.
func (u *UserUseCaseImpl) DeleteAccount(ctx context.Context, username string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteAccount), zap.String("username", username))
	log.Debug(ctx, msgDeletingAccount)

	if err := u.userRepo.Delete(ctx, username); err != nil {
		if !errors.Is(err, entities.ErrUserNotFound) {
			log.Error(ctx, msgErrDeleteAccount, zap.Error(err))
		}
		return fmt.Errorf("%s: %w", errCtxDeletingAccount, err)
	}

	log.Info(ctx, msgAccountDeleted)
	return nil
}
