package repositories

import (
	"context"

	"myflix/internal/domain/entities"
)

// MovieRepository определяет операции чтения каталога фильмов.
type MovieRepository interface {
	List(ctx context.Context) ([]*entities.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entities.Movie, error)
	FindGenre(ctx context.Context, name string) (*entities.Genre, error)
	FindDirector(ctx context.Context, name string) (*entities.Director, error)
}
