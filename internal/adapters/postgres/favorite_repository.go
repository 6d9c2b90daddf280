package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"myflix/internal/domain/entities"
	"myflix/internal/ports/repositories"
	"myflix/pkg/logger"
)

// Код ошибки PostgreSQL для нарушения внешнего ключа.
const pgForeignKeyViolation = "23503"

// FavoriteRepository реализует интерфейс repositories.FavoriteRepository.
// Членство проверяется и изменяется одним условным запросом, поэтому
// конкурентные Add/Remove для одного пользователя не создают дубликатов.
type FavoriteRepository struct {
	pool PgxPoolInterface
}

// NewFavoriteRepository создает новый репозиторий избранного.
func NewFavoriteRepository(pool PgxPoolInterface) repositories.FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// List возвращает идентификаторы фильмов из избранного пользователя.
// Порядок элементов не гарантируется.
func (r *FavoriteRepository) List(ctx context.Context, userID string) ([]string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "favorite"), zap.String("method", "List"))
	log.Debug(ctx, "listing favorites", zap.String("userID", userID))

	rows, err := r.pool.Query(ctx,
		`SELECT movie_id FROM favorites WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		log.Error(ctx, "failed to list favorites", zap.Error(err))
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	movieIDs := make([]string, 0)
	for rows.Next() {
		var movieID string
		if err := rows.Scan(&movieID); err != nil {
			log.Error(ctx, "failed to scan favorite", zap.Error(err))
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		movieIDs = append(movieIDs, movieID)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return movieIDs, nil
}

// Add добавляет фильм в избранное пользователя.
// ON CONFLICT DO NOTHING делает вставку идемпотентной: повторный вызов
// не затрагивает ни одной строки и возвращает OutcomeAlreadyPresent.
func (r *FavoriteRepository) Add(ctx context.Context, userID, movieID string) (entities.Outcome, error) {
	log := logger.Log(ctx).With(zap.String("repository", "favorite"), zap.String("method", "Add"))
	log.Debug(ctx, "adding favorite", zap.String("userID", userID), zap.String("movieID", movieID))

	result, err := r.pool.Exec(ctx,
		`INSERT INTO favorites (user_id, movie_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, movieID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			log.Debug(ctx, "user vanished before insert", zap.String("userID", userID))
			return "", entities.ErrUserNotFound
		}
		log.Error(ctx, "failed to add favorite", zap.Error(err))
		return "", fmt.Errorf("failed to add favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "movie already in favorites", zap.String("movieID", movieID))
		return entities.OutcomeAlreadyPresent, nil
	}

	return entities.OutcomeAdded, nil
}

// Remove удаляет фильм из избранного пользователя.
// Удаление отсутствующего элемента не ошибка: затронутые строки
// отличают OutcomeRemoved от OutcomeNotPresent.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, movieID string) (entities.Outcome, error) {
	log := logger.Log(ctx).With(zap.String("repository", "favorite"), zap.String("method", "Remove"))
	log.Debug(ctx, "removing favorite", zap.String("userID", userID), zap.String("movieID", movieID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID,
	)
	if err != nil {
		log.Error(ctx, "failed to remove favorite", zap.Error(err))
		return "", fmt.Errorf("failed to remove favorite: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "movie was not in favorites", zap.String("movieID", movieID))
		return entities.OutcomeNotPresent, nil
	}

	return entities.OutcomeRemoved, nil
}
