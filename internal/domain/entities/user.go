// Package entities содержит доменные модели приложения.
package entities

import (
	"errors"
	"time"
)

// Доменные ошибки для работы с пользователями.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// User представляет пользователя приложения (Principal).
// Username - естественный ключ, неизменяемый после регистрации.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Birthday     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
