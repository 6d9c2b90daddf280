package favoritesusecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"myflix/internal/app"
	"myflix/internal/domain/entities"
)

func TestRemove(t *testing.T) {
	ctx := context.Background()

	const (
		username = "alice"
		userID   = "user-id-alice"
		movieID  = "m42"
	)

	principal := &entities.User{ID: userID, Username: username}

	tests := []struct {
		name            string
		setupMocks      func(userRepo *mockUserRepository, favoriteRepo *mockFavoriteRepository)
		expectedOutcome entities.Outcome
		expectedErr     error
	}{
		{
			name: "remove of present movie reports removed",
			setupMocks: func(userRepo *mockUserRepository, favoriteRepo *mockFavoriteRepository) {
				userRepo.On("FindByUsername", mock.Anything, username).Return(principal, nil).Once()
				favoriteRepo.On("Remove", mock.Anything, userID, movieID).
					Return(entities.OutcomeRemoved, nil).Once()
			},
			expectedOutcome: entities.OutcomeRemoved,
		},
		{
			name: "remove of absent movie reports not present without error",
			setupMocks: func(userRepo *mockUserRepository, favoriteRepo *mockFavoriteRepository) {
				userRepo.On("FindByUsername", mock.Anything, username).Return(principal, nil).Once()
				favoriteRepo.On("Remove", mock.Anything, userID, movieID).
					Return(entities.OutcomeNotPresent, nil).Once()
			},
			expectedOutcome: entities.OutcomeNotPresent,
		},
		{
			name: "principal vanished before the operation",
			setupMocks: func(userRepo *mockUserRepository, _ *mockFavoriteRepository) {
				userRepo.On("FindByUsername", mock.Anything, username).
					Return(nil, entities.ErrUserNotFound).Once()
			},
			expectedErr: entities.ErrUserNotFound,
		},
		{
			name: "store failure surfaces as error, not as outcome",
			setupMocks: func(userRepo *mockUserRepository, favoriteRepo *mockFavoriteRepository) {
				userRepo.On("FindByUsername", mock.Anything, username).Return(principal, nil).Once()
				favoriteRepo.On("Remove", mock.Anything, userID, movieID).
					Return(entities.Outcome(""), ErrDatabaseConnection).Once()
			},
			expectedErr: ErrDatabaseConnection,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			favoriteRepo := new(mockFavoriteRepository)
			tt.setupMocks(userRepo, favoriteRepo)

			useCase := app.NewFavoritesUseCase(userRepo, favoriteRepo)

			outcome, err := useCase.Remove(ctx, username, movieID)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, outcome)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedOutcome, outcome)
			}

			userRepo.AssertExpectations(t)
			favoriteRepo.AssertExpectations(t)
		})
	}
}
