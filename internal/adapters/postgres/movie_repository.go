package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"myflix/internal/domain/entities"
	"myflix/internal/ports/repositories"
	"myflix/pkg/logger"
)

const movieColumns = `id, title, description, genre_name, genre_description,
        director_name, director_bio, director_birth, director_death, image_path, featured`

// MovieRepository реализует интерфейс repositories.MovieRepository.
type MovieRepository struct {
	pool PgxPoolInterface
}

// NewMovieRepository создает новый репозиторий фильмов.
func NewMovieRepository(pool PgxPoolInterface) repositories.MovieRepository {
	return &MovieRepository{pool: pool}
}

func scanMovie(row pgx.Row) (*entities.Movie, error) {
	var movie entities.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre.Name,
		&movie.Genre.Description,
		&movie.Director.Name,
		&movie.Director.Bio,
		&movie.Director.Birth,
		&movie.Director.Death,
		&movie.ImagePath,
		&movie.Featured,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// List возвращает весь каталог фильмов.
func (r *MovieRepository) List(ctx context.Context) ([]*entities.Movie, error) {
	log := logger.Log(ctx).With(zap.String("repository", "movie"), zap.String("method", "List"))
	log.Debug(ctx, "listing movies")

	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM movies ORDER BY title`, movieColumns),
	)
	if err != nil {
		log.Error(ctx, "failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entities.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			log.Error(ctx, "failed to scan movie", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return movies, nil
}

// FindByTitle находит фильм по названию.
func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*entities.Movie, error) {
	log := logger.Log(ctx).With(zap.String("repository", "movie"), zap.String("method", "FindByTitle"))

	movie, err := scanMovie(r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM movies WHERE title = $1`, movieColumns),
		title,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "movie not found", zap.String("title", title))
			return nil, entities.ErrMovieNotFound
		}
		log.Error(ctx, "failed to find movie", zap.Error(err))
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return movie, nil
}

// FindGenre возвращает описание жанра из любого фильма, несущего этот жанр.
func (r *MovieRepository) FindGenre(ctx context.Context, name string) (*entities.Genre, error) {
	log := logger.Log(ctx).With(zap.String("repository", "movie"), zap.String("method", "FindGenre"))

	var genre entities.Genre
	err := r.pool.QueryRow(ctx,
		`SELECT genre_name, genre_description FROM movies WHERE genre_name = $1 LIMIT 1`,
		name,
	).Scan(&genre.Name, &genre.Description)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "genre not found", zap.String("name", name))
			return nil, entities.ErrGenreNotFound
		}
		log.Error(ctx, "failed to find genre", zap.Error(err))
		return nil, fmt.Errorf("failed to find genre: %w", err)
	}

	return &genre, nil
}

// FindDirector возвращает сведения о режиссере из любого его фильма.
func (r *MovieRepository) FindDirector(ctx context.Context, name string) (*entities.Director, error) {
	log := logger.Log(ctx).With(zap.String("repository", "movie"), zap.String("method", "FindDirector"))

	var director entities.Director
	err := r.pool.QueryRow(ctx,
		`SELECT director_name, director_bio, director_birth, director_death
         FROM movies WHERE director_name = $1 LIMIT 1`,
		name,
	).Scan(&director.Name, &director.Bio, &director.Birth, &director.Death)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "director not found", zap.String("name", name))
			return nil, entities.ErrDirectorNotFound
		}
		log.Error(ctx, "failed to find director", zap.Error(err))
		return nil, fmt.Errorf("failed to find director: %w", err)
	}

	return &director, nil
}
