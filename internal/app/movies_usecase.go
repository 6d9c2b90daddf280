package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"myflix/internal/domain/entities"
	"myflix/internal/ports/api"
	"myflix/internal/ports/cache"
	"myflix/internal/ports/repositories"
	"myflix/pkg/logger"
)

const (
	methodListMovies  = "Movies.List"
	methodGetMovie    = "Movies.Get"
	methodGetGenre    = "Movies.GetGenre"
	methodGetDirector = "Movies.GetDirector"

	msgListingMovies   = "listing movie catalog"
	msgCatalogCacheHit = "movie catalog served from cache"
	msgGettingMovie    = "getting movie by title"
	msgGettingGenre    = "getting genre by name"
	msgGettingDirector = "getting director by name"

	msgErrListMovies   = "failed to list movies"
	msgErrCacheRead    = "failed to read catalog from cache"
	msgErrCacheWrite   = "failed to store catalog in cache"
	msgErrGetMovie     = "failed to get movie"
	msgErrGetGenre     = "failed to get genre"
	msgErrGetDirector  = "failed to get director"
	msgErrCacheDecode  = "failed to decode cached catalog"

	errCtxListingMovies   = "listing movies"
	errCtxGettingMovie    = "getting movie"
	errCtxGettingGenre    = "getting genre"
	errCtxGettingDirector = "getting director"
)

// catalogCacheKey - ключ кэша для полного каталога фильмов.
const catalogCacheKey = "movies:catalog"

// MovieUseCaseImpl реализует интерфейс api.MovieUseCase.
// Полный каталог кэшируется в Redis с TTL; точечные запросы идут в хранилище.
type MovieUseCaseImpl struct {
	movieRepo repositories.MovieRepository
	cache     cache.Cache
}

// NewMovieUseCase создает новый экземпляр сценария работы с каталогом.
func NewMovieUseCase(movieRepo repositories.MovieRepository, movieCache cache.Cache) api.MovieUseCase {
	return &MovieUseCaseImpl{
		movieRepo: movieRepo,
		cache:     movieCache,
	}
}

// ListMovies возвращает полный каталог фильмов.
// Ошибки кэша не фатальны: каталог читается из хранилища.
func (m *MovieUseCaseImpl) ListMovies(ctx context.Context) ([]*entities.Movie, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListMovies))
	log.Debug(ctx, msgListingMovies)

	if cached, err := m.cache.Get(ctx, catalogCacheKey); err != nil {
		log.Warn(ctx, msgErrCacheRead, zap.Error(err))
	} else if cached != "" {
		var movies []*entities.Movie
		if err := json.Unmarshal([]byte(cached), &movies); err != nil {
			log.Warn(ctx, msgErrCacheDecode, zap.Error(err))
		} else {
			log.Debug(ctx, msgCatalogCacheHit, zap.Int("count", len(movies)))
			return movies, nil
		}
	}

	movies, err := m.movieRepo.List(ctx)
	if err != nil {
		log.Error(ctx, msgErrListMovies, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingMovies, err)
	}

	if encoded, err := json.Marshal(movies); err == nil {
		if err := m.cache.Set(ctx, catalogCacheKey, string(encoded), 0); err != nil {
			log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
		}
	}

	return movies, nil
}

// GetMovie возвращает фильм по названию.
func (m *MovieUseCaseImpl) GetMovie(ctx context.Context, title string) (*entities.Movie, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetMovie), zap.String("title", title))
	log.Debug(ctx, msgGettingMovie)

	movie, err := m.movieRepo.FindByTitle(ctx, title)
	if err != nil {
		if !isCatalogNotFound(err) {
			log.Error(ctx, msgErrGetMovie, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxGettingMovie, err)
	}

	return movie, nil
}

// GetGenre возвращает описание жанра по имени.
func (m *MovieUseCaseImpl) GetGenre(ctx context.Context, name string) (*entities.Genre, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetGenre), zap.String("name", name))
	log.Debug(ctx, msgGettingGenre)

	genre, err := m.movieRepo.FindGenre(ctx, name)
	if err != nil {
		if !isCatalogNotFound(err) {
			log.Error(ctx, msgErrGetGenre, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxGettingGenre, err)
	}

	return genre, nil
}

// GetDirector возвращает сведения о режиссере по имени.
func (m *MovieUseCaseImpl) GetDirector(ctx context.Context, name string) (*entities.Director, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetDirector), zap.String("name", name))
	log.Debug(ctx, msgGettingDirector)

	director, err := m.movieRepo.FindDirector(ctx, name)
	if err != nil {
		if !isCatalogNotFound(err) {
			log.Error(ctx, msgErrGetDirector, zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxGettingDirector, err)
	}

	return director, nil
}

func isCatalogNotFound(err error) bool {
	return errors.Is(err, entities.ErrMovieNotFound) ||
		errors.Is(err, entities.ErrGenreNotFound) ||
		errors.Is(err, entities.ErrDirectorNotFound)
}
