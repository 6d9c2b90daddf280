package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"myflix/internal/domain/entities"
	"myflix/internal/ports/api"
	"myflix/internal/ports/repositories"
	"myflix/pkg/logger"
)

const (
	methodFavoritesList   = "Favorites.List"
	methodFavoritesAdd    = "Favorites.Add"
	methodFavoritesRemove = "Favorites.Remove"

	msgListingFavorites = "listing user favorites"
	msgAddingFavorite   = "adding movie to favorites"
	msgRemovingFavorite = "removing movie from favorites"
	msgFavoriteOutcome  = "favorites operation finished"
	msgPrincipalGone    = "principal no longer exists"

	msgErrResolvePrincipal = "failed to resolve principal"
	msgErrListFavorites    = "failed to list favorites"
	msgErrAddFavorite      = "failed to add favorite"
	msgErrRemoveFavorite   = "failed to remove favorite"

	errCtxResolvingPrincipal = "resolving principal"
	errCtxListingFavorites   = "listing favorites"
	errCtxAddingFavorite     = "adding favorite"
	errCtxRemovingFavorite   = "removing favorite"
)

// FavoritesUseCaseImpl реализует интерфейс api.FavoritesUseCase.
// Проверка членства и запись делегированы условным операциям хранилища,
// поэтому последовательность "проверить, потом записать" здесь отсутствует.
type FavoritesUseCaseImpl struct {
	userRepo     repositories.UserRepository
	favoriteRepo repositories.FavoriteRepository
}

// NewFavoritesUseCase создает новый экземпляр сценария работы с избранным.
func NewFavoritesUseCase(
	userRepo repositories.UserRepository,
	favoriteRepo repositories.FavoriteRepository,
) api.FavoritesUseCase {
	return &FavoritesUseCaseImpl{
		userRepo:     userRepo,
		favoriteRepo: favoriteRepo,
	}
}

// List возвращает идентификаторы фильмов из избранного пользователя.
func (f *FavoritesUseCaseImpl) List(ctx context.Context, username string) ([]string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodFavoritesList), zap.String("username", username))
	log.Debug(ctx, msgListingFavorites)

	user, err := f.resolvePrincipal(ctx, username)
	if err != nil {
		return nil, err
	}

	movieIDs, err := f.favoriteRepo.List(ctx, user.ID)
	if err != nil {
		log.Error(ctx, msgErrListFavorites, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingFavorites, err)
	}

	return movieIDs, nil
}

// Add добавляет фильм в избранное пользователя.
// Повторное добавление не ошибка: возвращается OutcomeAlreadyPresent
// и запись в хранилище не выполняется.
func (f *FavoritesUseCaseImpl) Add(ctx context.Context, username, movieID string) (entities.Outcome, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodFavoritesAdd),
		zap.String("username", username),
		zap.String("movieID", movieID),
	)
	log.Debug(ctx, msgAddingFavorite)

	user, err := f.resolvePrincipal(ctx, username)
	if err != nil {
		return "", err
	}

	outcome, err := f.favoriteRepo.Add(ctx, user.ID, movieID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgPrincipalGone)
			return "", fmt.Errorf("%s: %w", errCtxResolvingPrincipal, err)
		}
		log.Error(ctx, msgErrAddFavorite, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxAddingFavorite, err)
	}

	log.Info(ctx, msgFavoriteOutcome, zap.String("outcome", string(outcome)))
	return outcome, nil
}

// Remove удаляет фильм из избранного пользователя.
// Удаление отсутствующего фильма не ошибка: возвращается OutcomeNotPresent.
func (f *FavoritesUseCaseImpl) Remove(ctx context.Context, username, movieID string) (entities.Outcome, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodFavoritesRemove),
		zap.String("username", username),
		zap.String("movieID", movieID),
	)
	log.Debug(ctx, msgRemovingFavorite)

	user, err := f.resolvePrincipal(ctx, username)
	if err != nil {
		return "", err
	}

	outcome, err := f.favoriteRepo.Remove(ctx, user.ID, movieID)
	if err != nil {
		log.Error(ctx, msgErrRemoveFavorite, zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxRemovingFavorite, err)
	}

	log.Info(ctx, msgFavoriteOutcome, zap.String("outcome", string(outcome)))
	return outcome, nil
}

// resolvePrincipal находит пользователя по имени. Пользователь мог исчезнуть
// между аутентификацией и операцией; это not-found, а не внутренняя ошибка.
func (f *FavoritesUseCaseImpl) resolvePrincipal(ctx context.Context, username string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("username", username))

	user, err := f.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgPrincipalGone)
			return nil, fmt.Errorf("%s: %w", errCtxResolvingPrincipal, err)
		}
		log.Error(ctx, msgErrResolvePrincipal, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxResolvingPrincipal, err)
	}

	return user, nil
}
