// Package favorites содержит HTTP обработчики списка избранного.
package favorites

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"myflix/internal/app/http/dto"
	"myflix/internal/app/http/middleware"
	"myflix/internal/domain/entities"
	"myflix/internal/ports/api"
	"myflix/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerListFavorites  = "favorites handler: list"
	LogHandlerAddFavorite    = "favorites handler: add"
	LogHandlerRemoveFavorite = "favorites handler: remove"

	ErrorMissingMovieID       = "movie id is required"
	ErrorForbidden            = "forbidden"
	ErrorUserNotFound         = "user not found"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики для работы с избранным.
type Handler struct {
	favoritesUseCase api.FavoritesUseCase
}

// NewHandler создает новый экземпляр обработчика избранного.
func NewHandler(favoritesUseCase api.FavoritesUseCase) *Handler {
	return &Handler{
		favoritesUseCase: favoritesUseCase,
	}
}

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// requirePathOwner проверяет, что имя в пути совпадает с аутентифицированным
// пользователем. Чужой список избранного недоступен даже с валидным токеном.
func requirePathOwner(ctx fiber.Ctx) (string, bool) {
	principal, ok := middleware.Principal(ctx)
	if !ok {
		return "", false
	}
	username := ctx.Params("username")
	if username != principal.Username {
		return "", false
	}
	return username, true
}

// ListFavorites обрабатывает запрос на получение избранного пользователя.
func (h *Handler) ListFavorites(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListFavorites"))
	log.Debug(requestCtx, LogHandlerListFavorites)

	username, ok := requirePathOwner(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusForbidden, ErrorForbidden)
	}

	movieIDs, err := h.favoritesUseCase.List(requestCtx, username)
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(movieIDs); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// AddFavorite обрабатывает запрос на добавление фильма в избранное.
// Настоящая вставка отвечает 201, идемпотентный no-op - 200;
// результат различим по полю outcome.
func (h *Handler) AddFavorite(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.AddFavorite"))
	log.Debug(requestCtx, LogHandlerAddFavorite)

	username, ok := requirePathOwner(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusForbidden, ErrorForbidden)
	}

	movieID := ctx.Params("movie_id")
	if movieID == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorMissingMovieID)
	}

	outcome, err := h.favoritesUseCase.Add(requestCtx, username, movieID)
	if err != nil {
		return h.handleError(ctx, err)
	}

	status := fiber.StatusOK
	if outcome == entities.OutcomeAdded {
		status = fiber.StatusCreated
	}

	if err := ctx.Status(status).JSON(dto.OutcomeResponse{
		Outcome: string(outcome),
		MovieID: movieID,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// RemoveFavorite обрабатывает запрос на удаление фильма из избранного.
// Повторное удаление не ошибка: ответ 200 с outcome not_present.
func (h *Handler) RemoveFavorite(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.RemoveFavorite"))
	log.Debug(requestCtx, LogHandlerRemoveFavorite)

	username, ok := requirePathOwner(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusForbidden, ErrorForbidden)
	}

	movieID := ctx.Params("movie_id")
	if movieID == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorMissingMovieID)
	}

	outcome, err := h.favoritesUseCase.Remove(requestCtx, username, movieID)
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.OutcomeResponse{
		Outcome: string(outcome),
		MovieID: movieID,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError переводит доменные ошибки в HTTP статусы. Ошибка хранилища
// всегда видна как 500, а не маскируется под успешный no-op.
func (h *Handler) handleError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	if errors.Is(err, entities.ErrUserNotFound) {
		return sendErrorResponse(ctx, fiber.StatusNotFound, ErrorUserNotFound)
	}

	log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
	return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrorFailedToServeRequest)
}
