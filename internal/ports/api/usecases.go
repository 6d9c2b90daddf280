// Package api определяет интерфейсы сценариев использования.
package api

import (
	"context"
	"time"

	"myflix/internal/domain/entities"
)

// Credential - выпущенный токен доступа вместе со сроком действия.
type Credential struct {
	Token     string
	ExpiresAt time.Time
	User      *entities.User
}

// Profile - представление пользователя вместе с его избранным.
type Profile struct {
	User      *entities.User
	Favorites []string
}

// ProfileUpdate - изменяемые поля профиля пользователя.
type ProfileUpdate struct {
	Email    string
	Password string
	Birthday *time.Time
}

// AuthUseCase определяет операции регистрации и входа.
type AuthUseCase interface {
	Register(ctx context.Context, username, email, password string, birthday *time.Time) (*entities.User, error)
	Login(ctx context.Context, username, password string) (*Credential, error)
}

// UserUseCase определяет операции над профилем пользователя.
type UserUseCase interface {
	GetProfile(ctx context.Context, username string) (*Profile, error)
	UpdateProfile(ctx context.Context, username string, update *ProfileUpdate) (*entities.User, error)
	DeleteAccount(ctx context.Context, username string) error
}

// MovieUseCase определяет операции чтения каталога фильмов.
type MovieUseCase interface {
	ListMovies(ctx context.Context) ([]*entities.Movie, error)
	GetMovie(ctx context.Context, title string) (*entities.Movie, error)
	GetGenre(ctx context.Context, name string) (*entities.Genre, error)
	GetDirector(ctx context.Context, name string) (*entities.Director, error)
}

// FavoritesUseCase определяет операции над списком избранного.
// Все операции адресуются именем пользователя, разрешенным Access Gate.
type FavoritesUseCase interface {
	List(ctx context.Context, username string) ([]string, error)
	Add(ctx context.Context, username, movieID string) (entities.Outcome, error)
	Remove(ctx context.Context, username, movieID string) (entities.Outcome, error)
}
