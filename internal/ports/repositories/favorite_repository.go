package repositories

import (
	"context"

	"myflix/internal/domain/entities"
)

// FavoriteRepository определяет операции над списком избранного пользователя.
// Add и Remove атомарны: проверка членства и запись выполняются одним
// условным запросом к хранилищу, поэтому конкурентные вызовы для одного
// пользователя не могут создать дубликат.
type FavoriteRepository interface {
	List(ctx context.Context, userID string) ([]string, error)
	Add(ctx context.Context, userID, movieID string) (entities.Outcome, error)
	Remove(ctx context.Context, userID, movieID string) (entities.Outcome, error)
}
