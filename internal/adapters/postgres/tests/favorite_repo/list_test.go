package favoriterepo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myflix/internal/adapters/postgres"
	"myflix/pkg/logger"
)

func TestFavoriteRepository_List(t *testing.T) {
	ctx := context.Background()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	ctx = logger.NewContext(ctx, testLogger)

	const userID = "9f3e2a10-0000-0000-0000-000000000001"

	t.Run("Возвращает идентификаторы фильмов", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		rows := pgxmock.NewRows([]string{"movie_id"}).
			AddRow("movie-1").
			AddRow("movie-2")

		mock.ExpectQuery("SELECT movie_id FROM favorites").
			WithArgs(userID).
			WillReturnRows(rows)

		repo := postgres.NewFavoriteRepository(mock)

		movieIDs, err := repo.List(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, []string{"movie-1", "movie-2"}, movieIDs)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустое избранное возвращает пустой список, а не nil", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT movie_id FROM favorites").
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"movie_id"}))

		repo := postgres.NewFavoriteRepository(mock)

		movieIDs, err := repo.List(ctx, userID)

		require.NoError(t, err)
		assert.NotNil(t, movieIDs)
		assert.Empty(t, movieIDs)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection failed")
		mock.ExpectQuery("SELECT movie_id FROM favorites").
			WithArgs(userID).
			WillReturnError(dbError)

		repo := postgres.NewFavoriteRepository(mock)

		_, err = repo.List(ctx, userID)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list favorites")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
