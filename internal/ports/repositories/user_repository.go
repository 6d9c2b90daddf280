// Package repositories определяет интерфейсы доступа к хранилищу.
package repositories

import (
	"context"

	"myflix/internal/domain/entities"
)

// UserRepository определяет операции над пользователями.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) (*entities.User, error)
	Delete(ctx context.Context, username string) error
}
