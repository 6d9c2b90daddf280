// Package services определяет интерфейсы вспомогательных сервисов.
package services

import (
	"context"
	"time"
)

// TokenService определяет операции выпуска и проверки токенов доступа.
type TokenService interface {
	GenerateToken(ctx context.Context, username string) (string, time.Time, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}
