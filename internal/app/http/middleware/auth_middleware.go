// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"myflix/internal/domain/entities"
	"myflix/internal/ports/repositories"
	svc "myflix/internal/ports/services"
	"myflix/pkg/logger"
)

// PrincipalKey - ключ Locals с аутентифицированным пользователем.
const PrincipalKey = "principal"

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
	ErrorPrincipalGone      = "token subject no longer exists"
)

// Единый ответ на любой отказ аутентификации: детали отказа не раскрываются,
// чтобы не помогать перебору токенов и имен.
const unauthorizedMessage = "unauthorized"

// NewAuthMiddleware создает Access Gate: каждый запрос к защищенному маршруту
// проходит проверку подписи токена и разрешение имени в существующего
// пользователя до запуска доменной логики. Состояние между запросами
// не сохраняется.
func NewAuthMiddleware(tokenSvc svc.TokenService, userRepo repositories.UserRepository) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return sendUnauthorized(ctx)
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return sendUnauthorized(ctx)
		}

		username, err := tokenSvc.ValidateToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return sendUnauthorized(ctx)
		}

		principal, err := userRepo.FindByUsername(requestCtx, username)
		if err != nil {
			// Валидная подпись с исчезнувшим пользователем - тоже 401:
			// отличие от невалидного токена наружу не сообщается.
			log.Debug(requestCtx, ErrorPrincipalGone, zap.Error(err))
			return sendUnauthorized(ctx)
		}

		ctx.Locals(PrincipalKey, principal)

		return ctx.Next()
	}
}

// Principal извлекает аутентифицированного пользователя из контекста запроса.
func Principal(ctx fiber.Ctx) (*entities.User, bool) {
	principal, ok := ctx.Locals(PrincipalKey).(*entities.User)
	return principal, ok
}

func sendUnauthorized(ctx fiber.Ctx) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": unauthorizedMessage,
	})
}
