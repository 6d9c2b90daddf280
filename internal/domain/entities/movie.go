package entities

import "errors"

// Доменные ошибки для работы с фильмами.
var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrDirectorNotFound = errors.New("director not found")
)

// Genre описывает жанр фильма.
type Genre struct {
	Name        string
	Description string
}

// Director описывает режиссера фильма.
type Director struct {
	Name  string
	Bio   string
	Birth string
	Death string
}

// Movie представляет фильм в каталоге.
type Movie struct {
	ID          string
	Title       string
	Description string
	Genre       Genre
	Director    Director
	ImagePath   string
	Featured    bool
}
