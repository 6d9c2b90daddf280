// Package users содержит HTTP обработчики профиля пользователя.
package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"myflix/internal/app"
	"myflix/internal/app/http/dto"
	"myflix/internal/app/http/middleware"
	"myflix/internal/domain/entities"
	"myflix/internal/ports/api"
	"myflix/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerGetUser    = "users handler: get profile"
	LogHandlerUpdateUser = "users handler: update profile"
	LogHandlerDeleteUser = "users handler: delete account"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidBirthday      = "invalid birthday format, expected YYYY-MM-DD"
	ErrorForbidden            = "forbidden"
	ErrorUserNotFound         = "user not found"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler содержит HTTP обработчики профиля.
type Handler struct {
	userUseCase api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика профиля.
func NewHandler(userUseCase api.UserUseCase) *Handler {
	return &Handler{
		userUseCase: userUseCase,
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
// пользователем.
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

// GetUser обрабатывает запрос на получение профиля пользователя.
func (h *Handler) GetUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetUser"))
	log.Debug(requestCtx, LogHandlerGetUser)

	username, ok := requirePathOwner(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusForbidden, ErrorForbidden)
	}

	profile, err := h.userUseCase.GetProfile(requestCtx, username)
	if err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.NewUserResponse(profile.User, profile.Favorites)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateUser обрабатывает запрос на обновление профиля.
func (h *Handler) UpdateUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateUser"))
	log.Debug(requestCtx, LogHandlerUpdateUser)

	username, ok := requirePathOwner(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusForbidden, ErrorForbidden)
	}

	var req dto.UpdateUserRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}

	update := &api.ProfileUpdate{
		Email:    req.Email,
		Password: req.Password,
	}

	if req.Birthday != "" {
		parsed, err := time.Parse(dto.BirthdayLayout, req.Birthday)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidBirthday, zap.Error(err))
			return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidBirthday)
		}
		update.Birthday = &parsed
	}

	user, err := h.userUseCase.UpdateProfile(requestCtx, username, update)
	if err != nil {
		switch {
		case isValidationError(err):
			return sendErrorResponse(ctx, fiber.StatusUnprocessableEntity, err.Error())
		default:
			return h.handleError(ctx, err)
		}
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.NewUserResponse(user, nil)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteUser обрабатывает запрос на удаление учетной записи.
func (h *Handler) DeleteUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteUser"))
	log.Debug(requestCtx, LogHandlerDeleteUser)

	username, ok := requirePathOwner(ctx)
	if !ok {
		return sendErrorResponse(ctx, fiber.StatusForbidden, ErrorForbidden)
	}

	if err := h.userUseCase.DeleteAccount(requestCtx, username); err != nil {
		return h.handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("%s was deleted", username),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func (h *Handler) handleError(ctx fiber.Ctx, err error) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)

	if errors.Is(err, entities.ErrUserNotFound) {
		return sendErrorResponse(ctx, fiber.StatusNotFound, ErrorUserNotFound)
	}

	log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
	return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrorFailedToServeRequest)
}

func isValidationError(err error) bool {
	return errors.Is(err, app.ErrPasswordTooShort) || errors.Is(err, app.ErrInvalidEmail)
}
