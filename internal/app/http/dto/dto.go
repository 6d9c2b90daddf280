// Package dto содержит объекты передачи данных HTTP API.
package dto

import (
	"time"

	"myflix/internal/domain/entities"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=5,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Birthday string `json:"birthday,omitempty"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest содержит изменяемые поля профиля.
type UpdateUserRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Birthday string `json:"birthday,omitempty"`
}

// TokenResponse содержит выпущенный токен доступа.
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse содержит публичное представление пользователя.
// Хэш пароля наружу не отдается.
type UserResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Birthday  string   `json:"birthday,omitempty"`
	Favorites []string `json:"favorites,omitempty"`
}

// OutcomeResponse содержит результат операции над избранным.
type OutcomeResponse struct {
	Outcome string `json:"outcome"`
	MovieID string `json:"movie_id"`
}

// GenreResponse содержит представление жанра.
type GenreResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DirectorResponse содержит представление режиссера.
type DirectorResponse struct {
	Name  string `json:"name"`
	Bio   string `json:"bio"`
	Birth string `json:"birth,omitempty"`
	Death string `json:"death,omitempty"`
}

// MovieResponse содержит представление фильма.
type MovieResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Genre       GenreResponse    `json:"genre"`
	Director    DirectorResponse `json:"director"`
	ImagePath   string           `json:"image_path,omitempty"`
	Featured    bool             `json:"featured"`
}

// BirthdayLayout - формат даты рождения в запросах и ответах.
const BirthdayLayout = "2006-01-02"

// NewUserResponse строит представление пользователя из доменной модели.
func NewUserResponse(user *entities.User, favorites []string) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Favorites: favorites,
	}
	if user.Birthday != nil {
		resp.Birthday = user.Birthday.Format(BirthdayLayout)
	}
	return resp
}

// NewMovieResponse строит представление фильма из доменной модели.
func NewMovieResponse(movie *entities.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Genre: GenreResponse{
			Name:        movie.Genre.Name,
			Description: movie.Genre.Description,
		},
		Director: DirectorResponse{
			Name:  movie.Director.Name,
			Bio:   movie.Director.Bio,
			Birth: movie.Director.Birth,
			Death: movie.Director.Death,
		},
		ImagePath: movie.ImagePath,
		Featured:  movie.Featured,
	}
}
