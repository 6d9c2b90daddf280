// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"myflix/internal/app"
	"myflix/internal/app/http/dto"
	"myflix/internal/domain/entities"
	"myflix/internal/ports/api"
	"myflix/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister = "auth handler: register"
	LogHandlerLogin    = "auth handler: login"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidBirthday      = "invalid birthday format, expected YYYY-MM-DD"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Вспомогательная функция для обработки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, "username, email and password are required")
	}

	var birthday *time.Time
	if req.Birthday != "" {
		parsed, err := time.Parse(dto.BirthdayLayout, req.Birthday)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidBirthday, zap.Error(err))
			return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidBirthday)
		}
		birthday = &parsed
	}

	user, err := h.authUseCase.Register(requestCtx, req.Username, req.Email, req.Password, birthday)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUserAlreadyExists):
			return sendErrorResponse(ctx, fiber.StatusConflict, err.Error())
		case isValidationError(err):
			return sendErrorResponse(ctx, fiber.StatusUnprocessableEntity, err.Error())
		default:
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrorFailedToServeRequest)
		}
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NewUserResponse(user, nil)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Username == "" || req.Password == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, "username and password are required")
	}

	credential, err := h.authUseCase.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			// Не сообщаем, что именно не совпало: имя или пароль.
			return sendErrorResponse(ctx, fiber.StatusUnauthorized, entities.ErrInvalidCredentials.Error())
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	response := dto.TokenResponse{
		Token:     credential.Token,
		ExpiresAt: credential.ExpiresAt,
		User:      dto.NewUserResponse(credential.User, nil),
	}

	if err := ctx.Status(fiber.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

func isValidationError(err error) bool {
	return errors.Is(err, app.ErrUsernameTooShort) ||
		errors.Is(err, app.ErrUsernameNotAlnum) ||
		errors.Is(err, app.ErrPasswordTooShort) ||
		errors.Is(err, app.ErrInvalidEmail)
}
